package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"citystore/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, city *model.City) (primitive.ObjectID, error)
}
