package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"citystore/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.City, error)
}
