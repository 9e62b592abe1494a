package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"citystore/internal/domain/model"
	"citystore/pkg/apperr"
)

func TestGetMalformedID(t *testing.T) {
	getter := NewGetter(&stubRetriever{err: notFoundErr()}, &fakeBlobStore{})

	_, err := getter.Get(context.Background(), "not-a-hex-id")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestGetUnknownID(t *testing.T) {
	getter := NewGetter(&stubRetriever{err: notFoundErr()}, &fakeBlobStore{})

	_, err := getter.Get(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestGetSuccess(t *testing.T) {
	id := primitive.NewObjectID()
	now := time.Now().UTC()
	retriever := &stubRetriever{city: &model.City{
		ID:        id,
		Name:      "Porto",
		Phone:     "+351220000000",
		Image:     "uploads/2-porto.png",
		CreatedAt: now,
		UpdatedAt: now,
	}}

	city, err := NewGetter(retriever, &fakeBlobStore{}).Get(context.Background(), id.Hex())
	require.NoError(t, err)

	assert.Equal(t, id.Hex(), city.ID)
	assert.Equal(t, "Porto", city.Name)
	assert.Equal(t, "+351220000000", city.Phone)
	assert.Equal(t, "uploads/2-porto.png", city.Image)
	assert.Equal(t, "http://cdn.test/uploads/2-porto.png", city.ImageURL)
}
