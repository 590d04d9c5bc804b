package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"portal-berita/internal/domain"
	"portal-berita/internal/repository"
)

// Seeder provisions the demo account and its sample catalog.
type Seeder struct {
	users    repository.UserRepository
	products repository.ProductRepository
	hash     PasswordHasher
	logger   *logrus.Logger
}

func NewSeeder(users repository.UserRepository, products repository.ProductRepository, hash PasswordHasher, logger *logrus.Logger) *Seeder {
	if hash == nil {
		hash = BcryptHasher
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Seeder{
		users:    users,
		products: products,
		hash:     hash,
		logger:   logger,
	}
}

// Seed ensures the demo user exists and appends the sample products to it.
// The user is keyed on email; products are inserted on every call.
func (s *Seeder) Seed(ctx context.Context) error {
	user, err := s.ensureDemoUser(ctx)
	if err != nil {
		return err
	}

	for _, seed := range DemoProducts() {
		product := &domain.Product{
			UserID:      user.ID,
			Name:        seed.Name,
			Description: seed.Description,
			Price:       seed.Price,
			Stock:       seed.Stock,
			Image:       seed.Image,
		}
		if _, err := s.products.Create(ctx, product); err != nil {
			return fmt.Errorf("seed product %q: %w", seed.Name, err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"products": len(DemoProducts()),
	}).Info("seeded demo products")
	return nil
}

func (s *Seeder) ensureDemoUser(ctx context.Context) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, DemoUserEmail)
	if err == nil {
		s.logger.WithField("user_id", user.ID).Info("reusing demo user")
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("find demo user: %w", err)
	}

	hash, err := s.hash(DemoUserPassword)
	if err != nil {
		return nil, fmt.Errorf("demo user password: %w", err)
	}

	user = &domain.User{
		Name:         DemoUserName,
		Email:        DemoUserEmail,
		PasswordHash: hash,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if !errors.Is(err, repository.ErrUserExists) {
			return nil, fmt.Errorf("create demo user: %w", err)
		}
		// another seeder inserted it between lookup and create
		existing, err := s.users.FindByEmail(ctx, DemoUserEmail)
		if err != nil {
			return nil, fmt.Errorf("find demo user: %w", err)
		}
		s.logger.WithField("user_id", existing.ID).Info("reusing demo user")
		return existing, nil
	}

	s.logger.WithField("user_id", user.ID).Info("created demo user")
	return user, nil
}
