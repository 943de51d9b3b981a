package ports

import (
	"context"

	"github.com/retailrelay/commerce-api/internal/core/domain"
)

// ListProductsFilter carries the query parameters for listing products.
type ListProductsFilter struct {
	Category string // optional: exact match
	Search   string // optional: case-insensitive substring over name or description
	Page     int    // 1-based
	Limit    int    // rows per page
}

// ProductUpdate describes a partial update. Only non-nil fields are written;
// absent fields are left untouched, never nulled.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
	InStock     *bool
	Quantity    *int
}

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Update applies the non-nil fields of upd and returns the post-update record.
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// List returns a page of products matching filter plus the total match count.
	// Ordering is newest-first by creation time, ties broken by id, so pages
	// stay stable while concurrent inserts land at the front.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
}
