package database

import (
	"context"

	"citystore/internal/domain/model"
)

type Updater interface {
	Update(ctx context.Context, city *model.City) error
}
