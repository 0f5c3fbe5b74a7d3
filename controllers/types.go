package controllers

import (
	"context"

	"pharmacy-store/models"
	"pharmacy-store/services"
)

// IProductService abstracts the product service for the controllers, which
// keeps handlers testable with fakes.
type IProductService interface {
	ListProducts(ctx context.Context) []models.Product
	CreateProduct(ctx context.Context, candidate models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch services.ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// IAuthService abstracts login/logout/session checks.
type IAuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(token string) error
	Check(token string) (string, bool)
}

// LoginRequest is the expected body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
