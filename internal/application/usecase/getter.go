package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"citystore/internal/domain/dto"
	"citystore/internal/domain/repository/blob"
	"citystore/internal/domain/repository/database"
	"citystore/pkg/apperr"
)

// Getter implements the Getter abstraction for fetching a single city.
type Getter struct {
	retriever database.Retriever
	blobs     blob.Store
}

func NewGetter(retriever database.Retriever, blobs blob.Store) *Getter {
	return &Getter{
		retriever: retriever,
		blobs:     blobs,
	}
}

func (g *Getter) Get(ctx context.Context, id string) (*dto.City, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An id that cannot have been issued is indistinguishable from an
		// unknown one as far as the client is concerned.
		return nil, apperr.New(apperr.NotFound, "city not found")
	}

	city, err := g.retriever.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	return cityView(city, g.blobs), nil
}
