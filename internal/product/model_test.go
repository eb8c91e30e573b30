package product

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		quantity int
		want     Status
	}{
		{0, StatusOutOfStock},
		{1, StatusLowStock},
		{10, StatusLowStock},
		{11, StatusInStock},
		{500, StatusInStock},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.quantity), "quantity %d", tt.quantity)
		assert.True(t, tt.want.Valid())
	}
	assert.False(t, Status("Discontinued").Valid())
}

func TestProduct_StatusFollowsQuantity(t *testing.T) {
	p := Product{Name: "Spinach", Quantity: 12, Unit: "LB"}
	assert.Equal(t, StatusInStock, p.Status())

	p.Quantity = 8
	assert.Equal(t, StatusLowStock, p.Status())

	p.Quantity = 0
	assert.Equal(t, StatusOutOfStock, p.Status())
}

func TestProduct_MarshalJSON(t *testing.T) {
	p := Product{ID: "1", Name: "Onions", Category: "Vegetable", Quantity: 0, Unit: "LB", SKU: "SKU-ONI012"}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Out of Stock", decoded["status"])
	assert.Equal(t, PlaceholderImage, decoded["image"])
	assert.Equal(t, []any{}, decoded["stockHistory"])
	assert.NotContains(t, decoded, "createdAt")
}

func TestNewProduct(t *testing.T) {
	now := time.Date(2025, 5, 4, 15, 30, 0, 0, time.UTC)
	p := NewProduct(NewProductInput{Name: " Cheddar ", Category: "Dairy", Quantity: 5, Unit: "Pack"}, now)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Cheddar", p.Name)
	assert.Regexp(t, regexp.MustCompile(`^SKU-[A-Z0-9]{6}$`), p.SKU)
	assert.Equal(t, PlaceholderImage, p.Image)
	assert.Equal(t, "2025-05-04", p.CreatedAt)
	assert.Equal(t, StatusLowStock, p.Status())
	assert.Equal(t, []StockHistoryEntry{{Action: "Initial stock added: 5 Pack", Date: "2025-05-04"}}, p.StockHistory)

	other := NewProduct(NewProductInput{Name: "Cheddar", Category: "Dairy", Unit: "Pack"}, now)
	assert.NotEqual(t, p.ID, other.ID)
}

func TestUniqueCategories(t *testing.T) {
	assert.Equal(t, []string{"Vegetable", "Bun"}, UniqueCategories(SeedProducts()))
	assert.Empty(t, UniqueCategories(nil))
}

func TestSeedProducts_StatusMix(t *testing.T) {
	counts := map[Status]int{}
	for _, p := range SeedProducts() {
		counts[p.Status()]++
	}
	assert.Equal(t, 4, counts[StatusInStock])
	assert.Equal(t, 2, counts[StatusLowStock])
	assert.Equal(t, 1, counts[StatusOutOfStock])
}
