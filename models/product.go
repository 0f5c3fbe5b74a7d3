package models

// Product is a catalog entry. The ID is caller-assigned and unique across
// the store; Price is strictly positive; Tag is an optional display badge.
type Product struct {
	ID    string  `json:"id" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Image string  `json:"image" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Tag   string  `json:"tag,omitempty"`
}
