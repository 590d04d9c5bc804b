package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"portal-berita/internal/database"
	"portal-berita/internal/domain"
	"portal-berita/internal/repository"
)

// testDB creates a fresh in-memory SQLite database with migrations applied.
func testDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(context.Background(), db, database.DriverSQLite, nil); err != nil {
		db.Close()
		t.Fatalf("run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(testDB(t))

	t.Run("create", func(t *testing.T) {
		u := &domain.User{Name: "Demo User", Email: "demo@example.com", PasswordHash: "hash"}
		id, err := users.Create(ctx, u)
		if err != nil {
			t.Fatalf("create user: %v", err)
		}
		if id == 0 || u.ID != id {
			t.Errorf("id = %d, user.ID = %d", id, u.ID)
		}
		if u.CreatedAt.IsZero() {
			t.Error("created_at not set")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := users.Create(ctx, &domain.User{Name: "Other", Email: "demo@example.com", PasswordHash: "x"})
		if !errors.Is(err, repository.ErrUserExists) {
			t.Errorf("err = %v, want ErrUserExists", err)
		}
	})

	t.Run("find by email", func(t *testing.T) {
		u, err := users.FindByEmail(ctx, "demo@example.com")
		if err != nil {
			t.Fatalf("find user: %v", err)
		}
		if u.Name != "Demo User" || u.PasswordHash != "hash" {
			t.Errorf("user = %+v", u)
		}

		byID, err := users.GetByID(ctx, u.ID)
		if err != nil {
			t.Fatalf("get user: %v", err)
		}
		if byID.Email != u.Email {
			t.Errorf("email = %q, want %q", byID.Email, u.Email)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := users.FindByEmail(ctx, "nobody@example.com")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
		_, err = users.GetByID(ctx, 9999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("count", func(t *testing.T) {
		n, err := users.Count(ctx)
		if err != nil {
			t.Fatalf("count users: %v", err)
		}
		if n != 1 {
			t.Errorf("count = %d, want 1", n)
		}
	})
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	users := NewUserRepository(db)
	products := NewProductRepository(db)

	owner := &domain.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "hash"}
	if _, err := users.Create(ctx, owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}

	t.Run("create and list", func(t *testing.T) {
		p := &domain.Product{
			UserID:      owner.ID,
			Name:        "Sony WH-1000XM5",
			Description: "headphones",
			Price:       5499000,
			Stock:       50,
			Image:       "https://picsum.photos/seed/sony/400/300",
		}
		if _, err := products.Create(ctx, p); err != nil {
			t.Fatalf("create product: %v", err)
		}

		list, err := products.ListByUser(ctx, owner.ID)
		if err != nil {
			t.Fatalf("list products: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("len = %d, want 1", len(list))
		}
		got := list[0]
		if got.ID != p.ID || got.UserID != owner.ID || got.Price != 5499000 || got.Stock != 50 || got.Image != p.Image {
			t.Errorf("product = %+v", got)
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, err := products.Create(ctx, &domain.Product{UserID: 4242, Name: "orphan"})
		if err == nil {
			t.Fatal("expected foreign key error, got nil")
		}
	})

	t.Run("count", func(t *testing.T) {
		n, err := products.Count(ctx)
		if err != nil {
			t.Fatalf("count products: %v", err)
		}
		if n != 1 {
			t.Errorf("count = %d, want 1", n)
		}
	})
}
