package repository

import (
	"context"

	"pharmacy-store/models"
)

// ProductRepo defines the persistence operations used by the product
// service. The interface uses plain Go types to make swapping adapters
// easier.
type ProductRepo interface {
	// Load returns the persisted catalog, or an empty slice if the backing
	// file is absent or unreadable. It never fails.
	Load(ctx context.Context) []models.Product
	// Save overwrites the backing file with the full given catalog.
	Save(ctx context.Context, products []models.Product) error
}

// UserRepo defines read-only access to the credential records.
type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (*models.User, bool)
}
