package product

import (
	"encoding/json"
)

// PlaceholderImage is served for products without an uploaded image.
const PlaceholderImage = "/placeholder.svg"

// DateLayout is the calendar date format used for createdAt and history dates.
const DateLayout = "2006-01-02"

var (
	Categories = []string{
		"Vegetable",
		"Fruit",
		"Meat",
		"Dairy",
		"Bakery",
		"Bun",
		"Snack",
		"Beverage",
		"Spice",
		"Other",
	}

	Units = []string{"LB", "KG", "G", "Each", "Pack", "Box", "Bottle", "Can"}
)

type StockHistoryEntry struct {
	Action string `json:"action"`
	Date   string `json:"date"`
}

// Product is an inventory item. Status is derived from Quantity and is
// never stored.
type Product struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Category     string              `json:"category"`
	Quantity     int                 `json:"quantity"`
	Unit         string              `json:"unit"`
	Image        string              `json:"image,omitempty"`
	Description  string              `json:"description,omitempty"`
	SKU          string              `json:"sku"`
	CreatedAt    string              `json:"createdAt,omitempty"`
	StockHistory []StockHistoryEntry `json:"stockHistory"`
}

func (p Product) Status() Status {
	return StatusFor(p.Quantity)
}

// ImageURL returns the product image or the placeholder.
func (p Product) ImageURL() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}

// Clone returns a copy that shares no history slice with p.
func (p Product) Clone() Product {
	c := p
	if p.StockHistory != nil {
		c.StockHistory = append([]StockHistoryEntry(nil), p.StockHistory...)
	}
	return c
}

func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	history := p.StockHistory
	if history == nil {
		history = []StockHistoryEntry{}
	}
	a := alias(p)
	a.StockHistory = history
	a.Image = p.ImageURL()
	return json.Marshal(struct {
		alias
		Status Status `json:"status"`
	}{alias: a, Status: p.Status()})
}
