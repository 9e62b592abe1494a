package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"citystore/internal/domain/model"
	"citystore/pkg/apperr"
)

type CityRetriever struct {
	db *Database
}

func NewCityRetriever(db *Database) *CityRetriever {
	return &CityRetriever{db: db}
}

func (r *CityRetriever) GetByID(ctx context.Context, id primitive.ObjectID) (*model.City, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(CityCollection)

	var city model.City
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&city)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "city not found")
		}

		return nil, apperr.Wrap(apperr.Database, "couldn't retrieve city record", err)
	}

	return &city, nil
}
