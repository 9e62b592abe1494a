package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"citystore/internal/domain/model"
	"citystore/pkg/apperr"
)

type CityWriter struct {
	db *Database
}

func NewCityWriter(db *Database) *CityWriter {
	return &CityWriter{db: db}
}

func (w *CityWriter) Write(ctx context.Context, city *model.City) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(CityCollection)

	res, err := coll.InsertOne(ctx, city)
	if err != nil {
		return primitive.NilObjectID, apperr.Wrap(apperr.Database, "couldn't insert city record", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperr.New(apperr.Database, "unexpected inserted id type")
	}

	return id, nil
}
