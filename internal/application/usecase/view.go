package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"citystore/internal/domain/dto"
	"citystore/internal/domain/entity"
	"citystore/internal/domain/model"
	"citystore/internal/domain/repository/blob"
	"citystore/internal/domain/repository/broker"
	"citystore/pkg/logger"
)

// cityView shapes a record for the API, annotating it with the display
// URL derived from the stored reference.
func cityView(city *model.City, blobs blob.Store) *dto.City {
	return &dto.City{
		ID:        city.ID.Hex(),
		Name:      city.Name,
		Phone:     city.Phone,
		Image:     city.Image,
		ImageURL:  blobs.PublicURL(city.Image),
		CreatedAt: city.CreatedAt,
		UpdatedAt: city.UpdatedAt,
	}
}

// publishEvent emits a city event best-effort: a broker failure is
// logged and never surfaces to the caller.
func publishEvent(ctx context.Context, publisher broker.Publisher, action, cityID string) {
	err := publisher.Publish(ctx, entity.CityEvent{
		ID:     uuid.NewString(),
		Action: action,
		CityID: cityID,
		At:     time.Now().UTC(),
	})
	if err != nil {
		logger.Error("failed to publish city event", "action", action, "city_id", cityID, "err", err)
	}
}
