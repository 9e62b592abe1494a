package abstraction

import (
	"context"

	"citystore/internal/domain/dto"
)

type Lister interface {
	List(ctx context.Context) ([]dto.City, error)
}
