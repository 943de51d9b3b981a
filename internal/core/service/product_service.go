package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/retailrelay/commerce-api/internal/core/domain"
	"github.com/retailrelay/commerce-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ProductService implements catalog queries and admin CRUD. Role enforcement
// happens in the RBAC middleware; these operations trust their caller.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// List returns one page of products matching the optional category and search
// filters, newest first.
func (s *ProductService) List(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListProductsFilter{
		Category: strings.TrimSpace(in.Category),
		Search:   strings.TrimSpace(in.Search),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates required fields and numeric bounds, then persists.
func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || in.Description == "" || category == "" || in.Image == "" {
		return nil, domain.ErrValidation
	}
	if in.Price < 0 || in.Quantity < 0 {
		return nil, domain.ErrValidation
	}

	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Category:    category,
		Image:       in.Image,
		InStock:     inStock,
		Quantity:    in.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("category", created.Category).Msg("product created")
	return created, nil
}

// Update applies only the fields present in the input and returns the
// post-update record.
func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	if in.Price != nil && *in.Price < 0 {
		return nil, domain.ErrValidation
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.ErrValidation
	}
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		if trimmed == "" {
			return nil, domain.ErrValidation
		}
		in.Name = &trimmed
	}
	if in.Category != nil {
		trimmed := strings.TrimSpace(*in.Category)
		if trimmed == "" {
			return nil, domain.ErrValidation
		}
		in.Category = &trimmed
	}

	updated, err := s.repo.Update(ctx, id, ports.ProductUpdate{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		InStock:     in.InStock,
		Quantity:    in.Quantity,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", updated.ID).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
