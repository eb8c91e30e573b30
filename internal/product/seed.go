package product

// SeedProducts returns the demo catalogue, most recently added first.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Fresh Tomatoes",
			Category:    "Vegetable",
			Quantity:    50,
			Unit:        "LB",
			Image:       "https://images.unsplash.com/photo-1607305387299-a3d9611cd469",
			SKU:         "SKU-TOM123",
			Description: "Fresh, ripe tomatoes for salads and cooking",
			CreatedAt:   "2025-04-20",
			StockHistory: []StockHistoryEntry{
				{Action: "Added 50 LB of Fresh Tomatoes", Date: "2025-04-20"},
				{Action: "Stock adjustment: -5 LB (Quality control)", Date: "2025-04-22"},
			},
		},
		{
			ID:          "2",
			Name:        "Burger Buns",
			Category:    "Bun",
			Quantity:    100,
			Unit:        "Pack",
			Image:       "https://images.unsplash.com/photo-1594972654147-abcf7e246e44",
			SKU:         "SKU-BUN456",
			Description: "Soft burger buns, 8 per pack",
			CreatedAt:   "2025-04-19",
			StockHistory: []StockHistoryEntry{
				{Action: "Added 100 Packs of Burger Buns", Date: "2025-04-19"},
			},
		},
		{
			ID:          "3",
			Name:        "Lettuce",
			Category:    "Vegetable",
			Quantity:    10,
			Unit:        "Head",
			Image:       "https://images.unsplash.com/photo-1622206151226-18ca2c9ab4a1",
			SKU:         "SKU-LET789",
			Description: "Fresh green lettuce for salads and sandwiches",
			CreatedAt:   "2025-04-18",
			StockHistory: []StockHistoryEntry{
				{Action: "Added 30 Heads of Lettuce", Date: "2025-04-18"},
				{Action: "Stock adjustment: -20 Head (Sold)", Date: "2025-04-24"},
			},
		},
		{
			ID:          "4",
			Name:        "Onions",
			Category:    "Vegetable",
			Quantity:    0,
			Unit:        "LB",
			Image:       "https://images.unsplash.com/photo-1587049352851-8d4e89133924",
			SKU:         "SKU-ONI012",
			Description: "Yellow onions for cooking",
			CreatedAt:   "2025-04-15",
			StockHistory: []StockHistoryEntry{
				{Action: "Added 40 LB of Onions", Date: "2025-04-15"},
				{Action: "Stock adjustment: -40 LB (Sold out)", Date: "2025-04-23"},
			},
		},
		{
			ID:          "5",
			Name:        "Hot Dog Buns",
			Category:    "Bun",
			Quantity:    75,
			Unit:        "Pack",
			Image:       "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9",
			SKU:         "SKU-HDB345",
			Description: "Soft hot dog buns, 6 per pack",
			CreatedAt:   "2025-04-17",
			StockHistory: []StockHistoryEntry{
				{Action: "Added 75 Packs of Hot Dog Buns", Date: "2025-04-17"},
			},
		},
		{
			ID:          "6",
			Name:        "Bell Peppers",
			Category:    "Vegetable",
			Quantity:    30,
			Unit:        "Each",
			Image:       "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83",
			SKU:         "SKU-BEP678",
			Description: "Colorful bell peppers, mix of red, yellow and green",
			CreatedAt:   "2025-04-21",
			StockHistory: []StockHistoryEntry{
				{Action: "Added 30 Bell Peppers", Date: "2025-04-21"},
			},
		},
		{
			ID:          "7",
			Name:        "Spinach",
			Category:    "Vegetable",
			Quantity:    8,
			Unit:        "LB",
			Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb",
			SKU:         "SKU-SPI901",
			Description: "Fresh spinach leaves",
			CreatedAt:   "2025-04-16",
			StockHistory: []StockHistoryEntry{
				{Action: "Added 20 LB of Spinach", Date: "2025-04-16"},
				{Action: "Stock adjustment: -12 LB (Sold)", Date: "2025-04-24"},
			},
		},
	}
}
