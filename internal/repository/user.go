package repository

import (
	"context"

	"portal-berita/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	// Create inserts user and sets its ID. It returns ErrUserExists when the
	// email is already taken.
	Create(ctx context.Context, user *domain.User) (int64, error)
	// FindByEmail returns ErrNotFound when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Count(ctx context.Context) (int, error)
}
