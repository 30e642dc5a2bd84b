package catalog

import "github.com/lumina-commerce/storefront-api/models"

// SeedProducts returns the demo catalog the storefront ships with.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Lumina X-1 Sneakers",
			Description: "Ultra-lightweight running shoes designed for maximum comfort and performance. Breathable mesh upper with responsive cushioning.",
			Price:       129.00,
			Category:    "Fashion",
			Image:       "/uploads/minimalist_white_runners.jpg",
			Rating:      4.8,
			Reviews:     124,
			Stock:       15,
		},
		{
			ID:          "2",
			Name:        "Nordic Lounge Chair",
			Description: "Mid-century modern inspired armchair with premium grey fabric upholstery and solid oak legs. Perfect for your reading corner.",
			Price:       349.00,
			Category:    "Furniture",
			Image:       "/uploads/modern_grey_fabric_armchair.jpg",
			Rating:      4.9,
			Reviews:     89,
			Stock:       5,
		},
		{
			ID:          "3",
			Name:        "Sonic Pro Headphones",
			Description: "Industry-leading noise cancellation technology met with premium sound quality. 30-hour battery life and fast charging.",
			Price:       299.00,
			Category:    "Electronics",
			Image:       "/uploads/wireless_noise_cancelling_headphones.jpg",
			Rating:      4.7,
			Reviews:     450,
			Stock:       42,
		},
		{
			ID:          "4",
			Name:        "Chronos Smart Watch",
			Description: "Track your fitness, health, and notifications in style. Features an always-on retina display and water resistance up to 50m.",
			Price:       199.00,
			Category:    "Electronics",
			Image:       "/uploads/smart_watch_black_steel.jpg",
			Rating:      4.6,
			Reviews:     210,
			Stock:       20,
		},
		{
			ID:          "5",
			Name:        "Minimalist Desk Lamp",
			Description: "Adjustable LED desk lamp with touch controls and wireless charging base.",
			Price:       89.00,
			Category:    "Furniture",
			Image:       "https://images.unsplash.com/photo-1507473888900-52e1adad54ac?auto=format&fit=crop&q=80&w=800",
			Rating:      4.5,
			Reviews:     67,
			Stock:       30,
		},
		{
			ID:          "6",
			Name:        "Canvas Weekender",
			Description: "Durable canvas travel bag with leather accents. Spacious main compartment and multiple pockets.",
			Price:       145.00,
			Category:    "Accessories",
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&q=80&w=800",
			Rating:      4.8,
			Reviews:     32,
			Stock:       12,
		},
	}
}
