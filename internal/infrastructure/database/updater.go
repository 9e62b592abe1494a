package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"citystore/internal/domain/model"
	"citystore/pkg/apperr"
)

type CityUpdater struct {
	db *Database
}

func NewCityUpdater(db *Database) *CityUpdater {
	return &CityUpdater{db: db}
}

func (u *CityUpdater) Update(ctx context.Context, city *model.City) error {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	coll := u.db.Client.Database(u.db.DBName).Collection(CityCollection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": city.ID}, bson.M{"$set": bson.M{
		"name":       city.Name,
		"phone":      city.Phone,
		"image":      city.Image,
		"updated_at": city.UpdatedAt,
	}})
	if err != nil {
		return apperr.Wrap(apperr.Database, "couldn't update city record", err)
	}

	if res.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "city not found")
	}

	return nil
}
