package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"citystore/internal/domain/dto"
	"citystore/internal/domain/entity"
	"citystore/internal/domain/repository/blob"
	"citystore/internal/domain/repository/broker"
	"citystore/internal/domain/repository/database"
	"citystore/pkg/apperr"
	"citystore/pkg/logger"
)

// Updater implements the Updater abstraction for mutating city records.
// Name and phone are updated independently of the image; the image is
// replaced only when a new file was supplied.
type Updater struct {
	retriever database.Retriever
	updater   database.Updater
	blobs     blob.Store
	publisher broker.Publisher
}

func NewUpdater(retriever database.Retriever, updater database.Updater,
	blobs blob.Store, publisher broker.Publisher,
) *Updater {
	return &Updater{
		retriever: retriever,
		updater:   updater,
		blobs:     blobs,
		publisher: publisher,
	}
}

func (u *Updater) Update(ctx context.Context, id string, input entity.CityInput) (*dto.City, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "city not found")
	}

	city, err := u.retriever.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		city.Name = input.Name
	}
	if input.Phone != "" {
		city.Phone = input.Phone
	}

	// The old blob is removed only after the record points at the new
	// one, so a reference never dangles. A failure in between leaves the
	// new blob orphaned, which is accepted as a non-fatal leak.
	oldRef := ""
	if input.Image != nil {
		ref, err := u.blobs.Save(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		oldRef = city.Image
		city.Image = ref
	}

	city.UpdatedAt = time.Now().UTC()

	if err := u.updater.Update(ctx, city); err != nil {
		return nil, err
	}

	if oldRef != "" {
		if err := u.blobs.Remove(ctx, oldRef); err != nil {
			logger.Error("failed to remove replaced image", "ref", oldRef, "err", err)
		}
	}

	publishEvent(ctx, u.publisher, entity.ActionUpdated, id)

	return cityView(city, u.blobs), nil
}
