package product

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product id or sku already exists")
)

// Repository is the product source. List returns the catalogue most
// recently added first; Create puts the new product at the head.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, p Product) (Product, error)
}

type memoryRepository struct {
	mu       sync.RWMutex
	products []Product
}

// NewMemoryRepository returns an in-memory source holding a copy of seed.
func NewMemoryRepository(seed []Product) Repository {
	products := make([]Product, 0, len(seed))
	for _, p := range seed {
		products = append(products, p.Clone())
	}
	return &memoryRepository{products: products}
}

func (r *memoryRepository) List(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, p Product) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.ID == p.ID || existing.SKU == p.SKU {
			return Product{}, ErrDuplicateProduct
		}
	}

	stored := p.Clone()
	r.products = append([]Product{stored}, r.products...)
	return stored.Clone(), nil
}
