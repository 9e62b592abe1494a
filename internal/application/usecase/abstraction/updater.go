package abstraction

import (
	"context"

	"citystore/internal/domain/dto"
	"citystore/internal/domain/entity"
)

type Updater interface {
	Update(ctx context.Context, id string, input entity.CityInput) (*dto.City, error)
}
