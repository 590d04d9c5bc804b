package repository

import (
	"context"

	"portal-berita/internal/domain"
)

// ProductRepository exposes persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Product, error)
	Count(ctx context.Context) (int, error)
}
