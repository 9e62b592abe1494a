package abstraction

import (
	"context"

	"citystore/internal/domain/dto"
	"citystore/internal/domain/entity"
)

type Creator interface {
	Create(ctx context.Context, input entity.CityInput) (*dto.City, error)
}
