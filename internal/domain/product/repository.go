// internal/domain/product/repository.go
package product

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository reads products from the catalogue store
type Repository interface {
	FindByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, filter Filter) ([]Product, error)
	Latest(ctx context.Context, limit int) ([]Product, error)
}

// GormRepository is the relational Repository
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a product repository over db
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// FindByID returns the product with id or ErrProductNotFound
func (r *GormRepository) FindByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// List returns the products matching filter, with every predicate evaluated by the database
func (r *GormRepository) List(ctx context.Context, filter Filter) ([]Product, error) {
	query := r.db.WithContext(ctx).Model(&Product{})
	for _, cond := range filter.conditions() {
		query = query.Where(cond.query, cond.args...)
	}

	var products []Product
	if err := query.Order(filter.Sort.orderClause()).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Latest returns the most recently added products
func (r *GormRepository) Latest(ctx context.Context, limit int) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).
		Order(SortNewest.orderClause()).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest products: %w", err)
	}
	return products, nil
}
