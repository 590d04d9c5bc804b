package service

const (
	DemoUserEmail    = "demo@example.com"
	DemoUserName     = "Demo User"
	DemoUserPassword = "password123"
)

// ProductSeed is a fixed catalog entry inserted by the seeder.
type ProductSeed struct {
	Name        string
	Description string
	Price       int64
	Stock       int
	Image       string
}

// DemoProducts returns the sample catalog attached to the demo user.
func DemoProducts() []ProductSeed {
	return []ProductSeed{
		{
			Name:        "iPhone 15 Pro Max",
			Description: "Latest Apple flagship smartphone with A17 Pro chip, titanium design, and advanced camera system.",
			Price:       18999000,
			Stock:       25,
			Image:       "https://picsum.photos/seed/iphone/400/300",
		},
		{
			Name:        "MacBook Pro M3",
			Description: "Powerful laptop with M3 Pro chip, Liquid Retina XDR display, and all-day battery life.",
			Price:       32999000,
			Stock:       15,
			Image:       "https://picsum.photos/seed/macbook/400/300",
		},
		{
			Name:        "Samsung Galaxy S24 Ultra",
			Description: "Premium Android smartphone with Galaxy AI, S Pen, and 200MP camera.",
			Price:       19999000,
			Stock:       30,
			Image:       "https://picsum.photos/seed/samsung/400/300",
		},
		{
			Name:        "Sony WH-1000XM5",
			Description: "Industry-leading noise canceling headphones with exceptional sound quality.",
			Price:       5499000,
			Stock:       50,
			Image:       "https://picsum.photos/seed/sony/400/300",
		},
		{
			Name:        `iPad Pro 12.9"`,
			Description: "The ultimate iPad experience with M2 chip and stunning Liquid Retina XDR display.",
			Price:       17999000,
			Stock:       20,
			Image:       "https://picsum.photos/seed/ipad/400/300",
		},
	}
}
