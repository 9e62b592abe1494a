package usecase

import (
	"context"
	"time"

	"citystore/internal/domain/dto"
	"citystore/internal/domain/entity"
	"citystore/internal/domain/model"
	"citystore/internal/domain/repository/blob"
	"citystore/internal/domain/repository/broker"
	"citystore/internal/domain/repository/database"
	"citystore/pkg/apperr"
	"citystore/pkg/logger"
)

// Creator implements the Creator abstraction for adding city records.
type Creator struct {
	writer    database.Writer
	blobs     blob.Store
	publisher broker.Publisher
}

func NewCreator(writer database.Writer, blobs blob.Store, publisher broker.Publisher) *Creator {
	return &Creator{
		writer:    writer,
		blobs:     blobs,
		publisher: publisher,
	}
}

func (c *Creator) Create(ctx context.Context, input entity.CityInput) (*dto.City, error) {
	if input.Name == "" {
		return nil, apperr.New(apperr.Validation, "name is required")
	}
	if input.Phone == "" {
		return nil, apperr.New(apperr.Validation, "phone is required")
	}
	if input.Image == nil {
		return nil, apperr.New(apperr.Validation, "image is required")
	}

	ref, err := c.blobs.Save(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	city := &model.City{
		Name:      input.Name,
		Phone:     input.Phone,
		Image:     ref,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := c.writer.Write(ctx, city)
	if err != nil {
		if rmErr := c.blobs.Remove(ctx, ref); rmErr != nil {
			logger.Error("failed to remove image after record write failed", "ref", ref, "err", rmErr)
		}

		return nil, err
	}
	city.ID = id

	publishEvent(ctx, c.publisher, entity.ActionCreated, id.Hex())

	return cityView(city, c.blobs), nil
}
