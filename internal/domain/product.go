package domain

import "time"

// Product is a catalog entry owned by a single user.
// Price is expressed in the smallest currency unit.
type Product struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	Price       int64
	Stock       int
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
