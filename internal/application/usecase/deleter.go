package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"citystore/internal/domain/entity"
	"citystore/internal/domain/repository/blob"
	"citystore/internal/domain/repository/broker"
	"citystore/internal/domain/repository/database"
	"citystore/pkg/apperr"
	"citystore/pkg/logger"
)

// Deleter implements the Deleter abstraction for removing city records
// together with their images.
type Deleter struct {
	retriever database.Retriever
	remover   database.Remover
	blobs     blob.Store
	publisher broker.Publisher
}

func NewDeleter(retriever database.Retriever, remover database.Remover,
	blobs blob.Store, publisher broker.Publisher,
) *Deleter {
	return &Deleter{
		retriever: retriever,
		remover:   remover,
		blobs:     blobs,
		publisher: publisher,
	}
}

func (d *Deleter) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.New(apperr.NotFound, "city not found")
	}

	city, err := d.retriever.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	// Blob removal is best-effort; the record goes away regardless.
	if err := d.blobs.Remove(ctx, city.Image); err != nil {
		logger.Error("failed to remove image of deleted city", "ref", city.Image, "err", err)
	}

	if err := d.remover.RemoveByID(ctx, oid); err != nil {
		return err
	}

	publishEvent(ctx, d.publisher, entity.ActionDeleted, id)

	return nil
}
