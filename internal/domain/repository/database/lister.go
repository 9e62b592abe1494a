package database

import (
	"context"

	"citystore/internal/domain/model"
)

// Lister defines the interface for listing all city records.
type Lister interface {
	All(ctx context.Context) ([]model.City, error)
}
