package abstraction

import (
	"context"

	"citystore/internal/domain/dto"
)

type Getter interface {
	Get(ctx context.Context, id string) (*dto.City, error)
}
