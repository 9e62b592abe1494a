package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Remover interface {
	RemoveByID(ctx context.Context, id primitive.ObjectID) error
}
