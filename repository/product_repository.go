package repository

import (
	"context"
	"os"

	"pharmacy-store/models"

	"go.uber.org/zap"
)

// ProductRepository persists the product catalog as a flat JSON file. It is
// the sole writer of that file; all reads go through Load.
type ProductRepository struct {
	path string
}

func NewProductRepository(path string) *ProductRepository {
	return &ProductRepository{path: path}
}

// Load returns the persisted catalog in insertion order. A missing or
// unparseable file yields an empty catalog; the degradation is logged so an
// operator can tell "no products" from "store unreadable".
func (r *ProductRepository) Load(ctx context.Context) []models.Product {
	var products []models.Product
	if err := readJSONFile(r.path, &products); err != nil {
		if !os.IsNotExist(err) {
			zap.L().Warn("Product store unreadable, serving empty catalog",
				zap.String("path", r.path),
				zap.Error(err),
			)
		}
		return []models.Product{}
	}
	if products == nil {
		return []models.Product{}
	}
	return products
}

// Save atomically overwrites the backing file with the full catalog.
func (r *ProductRepository) Save(ctx context.Context, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	return writeJSONFile(r.path, products)
}
