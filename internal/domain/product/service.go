// internal/domain/product/service.go
package product

import (
	"context"
	"fmt"

	"github.com/romawatches/storefront/internal/config"
)

// Service handles catalogue browsing
type Service struct {
	repo   Repository
	config *config.Config
}

// NewService creates a new product service
func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
	}
}

// List returns the filtered and sorted catalogue
func (s *Service) List(ctx context.Context, filter Filter) ([]Product, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// Get returns a single product
func (s *Service) Get(ctx context.Context, id uint) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Latest returns the newest products for the home page
func (s *Service) Latest(ctx context.Context) ([]Product, error) {
	limit := s.config.Catalog.LatestLimit
	if limit <= 0 {
		limit = 4
	}
	return s.repo.Latest(ctx, limit)
}

// Facets returns the values offered by the catalogue filters
func (s *Service) Facets(ctx context.Context) (*Facets, error) {
	products, err := s.repo.List(ctx, Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load facets: %w", err)
	}
	return BuildFacets(products), nil
}
