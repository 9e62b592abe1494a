package broker

import (
	"context"

	"citystore/internal/domain/entity"
)

type Publisher interface {
	Publish(ctx context.Context, event entity.CityEvent) error
}
