package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"citystore/internal/domain/entity"
	"citystore/internal/domain/model"
	"citystore/pkg/apperr"
)

func existingCity(id primitive.ObjectID) *model.City {
	created := time.Now().UTC().Add(-time.Hour)

	return &model.City{
		ID:        id,
		Name:      "Lisbon",
		Phone:     "+351210000000",
		Image:     "uploads/1-lisbon.png",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestUpdateUnknownID(t *testing.T) {
	updater := NewUpdater(&stubRetriever{err: notFoundErr()}, &stubUpdater{}, &fakeBlobStore{}, &stubPublisher{})

	_, err := updater.Update(context.Background(), primitive.NewObjectID().Hex(), entity.CityInput{Name: "Porto"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	_, err = updater.Update(context.Background(), "garbage", entity.CityInput{Name: "Porto"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestUpdateNameOnlyLeavesImageUntouched(t *testing.T) {
	id := primitive.NewObjectID()
	dbUpdater := &stubUpdater{}
	blobs := &fakeBlobStore{}

	city, err := NewUpdater(&stubRetriever{city: existingCity(id)}, dbUpdater, blobs, &stubPublisher{}).
		Update(context.Background(), id.Hex(), entity.CityInput{Name: "Porto"})
	require.NoError(t, err)

	assert.Equal(t, "Porto", city.Name)
	assert.Equal(t, "+351210000000", city.Phone, "phone must stay untouched")
	assert.Equal(t, "uploads/1-lisbon.png", city.Image, "image must stay untouched")
	assert.Empty(t, blobs.ops, "no blob operation may happen without a new file")
	require.NotNil(t, dbUpdater.got)
	assert.True(t, dbUpdater.got.UpdatedAt.After(dbUpdater.got.CreatedAt))
}

func TestUpdatePhoneOnly(t *testing.T) {
	id := primitive.NewObjectID()
	dbUpdater := &stubUpdater{}

	city, err := NewUpdater(&stubRetriever{city: existingCity(id)}, dbUpdater, &fakeBlobStore{}, &stubPublisher{}).
		Update(context.Background(), id.Hex(), entity.CityInput{Phone: "+351230000000"})
	require.NoError(t, err)

	assert.Equal(t, "Lisbon", city.Name)
	assert.Equal(t, "+351230000000", city.Phone)
	assert.Equal(t, "uploads/1-lisbon.png", city.Image)
}

func TestUpdateReplacesImageAndRemovesOldBlob(t *testing.T) {
	id := primitive.NewObjectID()
	dbUpdater := &stubUpdater{}
	blobs := &fakeBlobStore{saveRef: "uploads/9-new.png"}
	publisher := &stubPublisher{}

	staged := &entity.StagedFile{Path: "/tmp/9-new.png", Size: 10, MIME: "image/png"}
	city, err := NewUpdater(&stubRetriever{city: existingCity(id)}, dbUpdater, blobs, publisher).
		Update(context.Background(), id.Hex(), entity.CityInput{Image: staged})
	require.NoError(t, err)

	assert.Equal(t, "uploads/9-new.png", city.Image)
	assert.Equal(t, "Lisbon", city.Name, "name must stay untouched")

	// new blob is stored before the old one goes away
	assert.Equal(t, []string{"save", "remove uploads/1-lisbon.png"}, blobs.ops)
	require.NotNil(t, dbUpdater.got)
	assert.Equal(t, "uploads/9-new.png", dbUpdater.got.Image)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, entity.ActionUpdated, publisher.events[0].Action)
}

func TestUpdateKeepsOldBlobWhenRecordUpdateFails(t *testing.T) {
	id := primitive.NewObjectID()
	dbUpdater := &stubUpdater{err: apperr.Wrap(apperr.Database, "couldn't update city record", errors.New("boom"))}
	blobs := &fakeBlobStore{saveRef: "uploads/9-new.png"}

	_, err := NewUpdater(&stubRetriever{city: existingCity(id)}, dbUpdater, blobs, &stubPublisher{}).
		Update(context.Background(), id.Hex(), entity.CityInput{
			Image: &entity.StagedFile{Path: "/tmp/9-new.png", Size: 10, MIME: "image/png"},
		})
	require.Error(t, err)

	// the previous image is still referenced by the record, so it must
	// survive; the new blob is left orphaned by design
	assert.Equal(t, []string{"save"}, blobs.ops)
}

func TestUpdateOldBlobRemovalFailureIsNonFatal(t *testing.T) {
	id := primitive.NewObjectID()
	blobs := &fakeBlobStore{saveRef: "uploads/9-new.png", removeErr: errors.New("boom")}

	city, err := NewUpdater(&stubRetriever{city: existingCity(id)}, &stubUpdater{}, blobs, &stubPublisher{}).
		Update(context.Background(), id.Hex(), entity.CityInput{
			Image: &entity.StagedFile{Path: "/tmp/9-new.png", Size: 10, MIME: "image/png"},
		})
	require.NoError(t, err)
	assert.Equal(t, "uploads/9-new.png", city.Image)
}
