package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portal-berita/internal/domain"
	"portal-berita/internal/repository"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (int64, error) {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	err := r.db.QueryRowContext(ctx, `
INSERT INTO products (user_id, name, description, price, stock, image, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`,
		product.UserID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Image,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return product.ID, nil
}

func (r *ProductRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, name, description, price, stock, image, created_at, updated_at
FROM products
WHERE user_id = $1
ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
