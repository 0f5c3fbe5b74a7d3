package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	apperrors "pharmacy-store/common/errors"
	"pharmacy-store/models"
	"pharmacy-store/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ProductPatch carries the fields an update may replace. The product ID is
// deliberately absent: it is immutable and any id in a request body is
// ignored.
type ProductPatch struct {
	Name  *string  `json:"name"`
	Image *string  `json:"image"`
	Price *float64 `json:"price"`
	Tag   *string  `json:"tag"`
}

// ProductService owns validation and mutation of the catalog. Mutations are
// full read-modify-write cycles against the backing file, serialized by mu
// so concurrent admin edits cannot silently drop each other's writes.
type ProductService struct {
	mu       sync.Mutex
	repo     repository.ProductRepo
	validate *validator.Validate
}

func NewProductService(repo repository.ProductRepo) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListProducts returns the full catalog in persisted order.
func (s *ProductService) ListProducts(ctx context.Context) []models.Product {
	return s.repo.Load(ctx)
}

// CreateProduct validates the candidate, enforces ID uniqueness, appends it
// to the catalog and persists. The stored record is returned.
func (s *ProductService) CreateProduct(ctx context.Context, candidate models.Product) (*models.Product, error) {
	if err := s.validateProduct(candidate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.repo.Load(ctx)
	for _, p := range products {
		if p.ID == candidate.ID {
			return nil, apperrors.ErrDuplicateID
		}
	}

	products = append(products, candidate)
	if err := s.repo.Save(ctx, products); err != nil {
		zap.L().Error("Failed to persist new product", zap.String("id", candidate.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	zap.L().Info("Product created", zap.String("id", candidate.ID), zap.String("name", candidate.Name))
	return &candidate, nil
}

// UpdateProduct merges patch over the existing record, validates the result
// and persists. Fields absent from the patch are preserved; the ID never
// changes.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.repo.Load(ctx)
	index := -1
	for i := range products {
		if products[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.ErrNotFound
	}

	merged := products[index]
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Image != nil {
		merged.Image = *patch.Image
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.Tag != nil {
		merged.Tag = *patch.Tag
	}

	if err := s.validateProduct(merged); err != nil {
		return nil, err
	}

	products[index] = merged
	if err := s.repo.Save(ctx, products); err != nil {
		zap.L().Error("Failed to persist product update", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	zap.L().Info("Product updated", zap.String("id", id))
	return &merged, nil
}

// DeleteProduct removes the record with the given ID and persists.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.repo.Load(ctx)
	remaining := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(products) {
		return apperrors.ErrNotFound
	}

	if err := s.repo.Save(ctx, remaining); err != nil {
		zap.L().Error("Failed to persist product deletion", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	zap.L().Info("Product deleted", zap.String("id", id))
	return nil
}

func (s *ProductService) validateProduct(p models.Product) error {
	err := s.validate.Struct(p)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, fieldErrorMessage(verrs[0]))
	}
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
