// internal/domain/user/repository.go
package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository persists accounts
type Repository interface {
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*User, error)
	// Create returns ErrEmailTaken when the email is already registered
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
}

// GormRepository is the relational Repository
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a user repository over db
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.first(ctx, "LOWER(email) = LOWER(?)", email)
}

func (r *GormRepository) FindByGoogleID(ctx context.Context, googleID string) (*User, error) {
	return r.first(ctx, "google_id = ?", googleID)
}

func (r *GormRepository) first(ctx context.Context, query string, args ...interface{}) (*User, error) {
	var user User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *GormRepository) Create(ctx context.Context, user *User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *GormRepository) Update(ctx context.Context, user *User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	return nil
}
