package usecase

import (
	"context"

	"citystore/internal/domain/dto"
	"citystore/internal/domain/repository/blob"
	"citystore/internal/domain/repository/database"
)

// Lister implements the Lister abstraction for listing all cities.
type Lister struct {
	lister database.Lister
	blobs  blob.Store
}

func NewLister(lister database.Lister, blobs blob.Store) *Lister {
	return &Lister{
		lister: lister,
		blobs:  blobs,
	}
}

func (l *Lister) List(ctx context.Context) ([]dto.City, error) {
	cities, err := l.lister.All(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]dto.City, 0, len(cities))
	for i := range cities {
		views = append(views, *cityView(&cities[i], l.blobs))
	}

	return views, nil
}
