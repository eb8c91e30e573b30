package product

type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusLowStock   Status = "Low Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// LowStockThreshold is the highest quantity still reported as Low Stock.
const LowStockThreshold = 10

func StatusFor(quantity int) Status {
	switch {
	case quantity > LowStockThreshold:
		return StatusInStock
	case quantity > 0:
		return StatusLowStock
	default:
		return StatusOutOfStock
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}
