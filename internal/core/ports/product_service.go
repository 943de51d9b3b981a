package ports

import (
	"context"

	"github.com/retailrelay/commerce-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog product.
// InStock may be omitted, in which case the product defaults to in stock.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	InStock     *bool
	Quantity    int
}

// UpdateProductInput mirrors ProductUpdate at the use-case boundary.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
	InStock     *bool
	Quantity    *int
}

// ListProductsInput carries the list endpoint parameters before defaulting.
type ListProductsInput struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

// ListProductsResult is returned by List.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines use-case operations for the product catalog.
type ProductService interface {
	List(ctx context.Context, in ListProductsInput) (*ListProductsResult, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
