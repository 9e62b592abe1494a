package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"citystore/pkg/apperr"
)

type CityRemover struct {
	db *Database
}

func NewCityRemover(db *Database) *CityRemover {
	return &CityRemover{db: db}
}

func (r *CityRemover) RemoveByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(CityCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Wrap(apperr.Database, "couldn't remove city record", err)
	}

	if res.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "city not found")
	}

	return nil
}
