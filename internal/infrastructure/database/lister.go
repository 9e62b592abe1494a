package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"citystore/internal/domain/model"
	"citystore/pkg/apperr"
)

type CityLister struct {
	db *Database
}

func NewCityLister(db *Database) *CityLister {
	return &CityLister{db: db}
}

func (l *CityLister) All(ctx context.Context) ([]model.City, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(CityCollection)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Wrap(apperr.Database, "couldn't list city records", err)
	}
	defer cursor.Close(ctx)

	var cities []model.City
	if err = cursor.All(ctx, &cities); err != nil {
		return nil, apperr.Wrap(apperr.Database, "couldn't decode city records", err)
	}

	return cities, nil
}
