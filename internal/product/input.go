package product

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewProductInput carries the add-product form.
type NewProductInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Category    string `json:"category" validate:"required,max=100"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	Unit        string `json:"unit" validate:"required,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Image       string `json:"image,omitempty" validate:"omitempty,max=2048"`
}

const skuAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewSKU returns "SKU-" followed by six random upper-case alphanumerics.
func NewSKU() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// time-based fallback
		n := time.Now().UnixNano()
		for i := range buf {
			buf[i] = byte(n >> (8 * i))
		}
	}
	for i, b := range buf {
		buf[i] = skuAlphabet[int(b)%len(skuAlphabet)]
	}
	return "SKU-" + string(buf)
}

// NewProduct builds a fresh product from the form, assigning identity, SKU
// and the initial stock history entry.
func NewProduct(in NewProductInput, now time.Time) Product {
	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = PlaceholderImage
	}

	date := now.Format(DateLayout)
	return Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Image:       image,
		Description: in.Description,
		SKU:         NewSKU(),
		CreatedAt:   date,
		StockHistory: []StockHistoryEntry{{
			Action: fmt.Sprintf("Initial stock added: %d %s", in.Quantity, in.Unit),
			Date:   date,
		}},
	}
}

// UniqueCategories lists categories in first-seen order.
func UniqueCategories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
