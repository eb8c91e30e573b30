// Package filter holds the inventory filter, search and pagination engine.
//
// The Engine is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package filter

import (
	"time"

	"stockview-be/internal/product"
)

// DefaultPageSize is the number of rows per inventory page.
const DefaultPageSize = 5

// Page is a contiguous, 1-indexed slice of the filtered view.
type Page struct {
	Items      []product.Product `json:"items"`
	Number     int               `json:"page"`
	Size       int               `json:"pageSize"`
	TotalCount int               `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
}

type Option func(*Engine)

// WithClock replaces time.Now as the reference for relative date ranges.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

type Engine struct {
	products []product.Product
	filtered []product.Product
	criteria Criteria
	page     int
	pageSize int
	now      func() time.Time
}

func NewEngine(pageSize int, opts ...Option) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	e := &Engine{
		criteria: DefaultCriteria(),
		page:     1,
		pageSize: pageSize,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.filtered = []product.Product{}
	return e
}

// SetCollection replaces the working set and re-applies the active criteria.
// The current page is kept when it still exists.
func (e *Engine) SetCollection(products []product.Product) {
	e.products = make([]product.Product, 0, len(products))
	for _, p := range products {
		e.products = append(e.products, p.Clone())
	}
	e.apply()
	e.page = e.clamp(e.page)
}

// AddProduct puts p at the head of the collection, re-applies the active
// criteria and returns to page 1 so the new row is visible.
func (e *Engine) AddProduct(p product.Product) {
	e.products = append([]product.Product{p.Clone()}, e.products...)
	e.apply()
	e.page = 1
}

// UpdateCriteria merges u into the active criteria, recomputes the view and
// resets to page 1.
func (e *Engine) UpdateCriteria(u Update) {
	e.criteria = e.criteria.merge(u)
	e.apply()
	e.page = 1
}

func (e *Engine) ResetCriteria() {
	e.criteria = DefaultCriteria()
	e.apply()
	e.page = 1
}

// GetPage returns the pageNumber-th slice of the filtered view. A
// non-positive pageSize uses the engine's configured size.
func (e *Engine) GetPage(pageNumber, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = e.pageSize
	}

	total := len(e.filtered)
	pages := totalPages(total, pageSize)

	items := []product.Product{}
	// Offsets are only computed for pages that exist.
	if pageNumber <= pages {
		start := 0
		if pageNumber > 1 {
			start = (pageNumber - 1) * pageSize
		}
		end := start + pageSize
		if end > total {
			end = total
		}
		items = make([]product.Product, 0, end-start)
		for _, p := range e.filtered[start:end] {
			items = append(items, p.Clone())
		}
	}

	return Page{
		Items:      items,
		Number:     pageNumber,
		Size:       pageSize,
		TotalCount: total,
		TotalPages: pages,
	}
}

// CurrentPage returns the engine's page at its configured size.
func (e *Engine) CurrentPage() Page {
	return e.GetPage(e.page, e.pageSize)
}

// SetPage moves to page n, clamped to [1, totalPages], and returns the
// page number actually selected.
func (e *Engine) SetPage(n int) int {
	e.page = e.clamp(n)
	return e.page
}

func (e *Engine) PageNumber() int { return e.page }

func (e *Engine) PageSize() int { return e.pageSize }

func (e *Engine) Criteria() Criteria { return e.criteria }

// Filtered returns a copy of the filtered view.
func (e *Engine) Filtered() []product.Product {
	return cloneAll(e.filtered)
}

// Collection returns a copy of the full working set.
func (e *Engine) Collection() []product.Product {
	return cloneAll(e.products)
}

// Find looks a product up by id in the full collection.
func (e *Engine) Find(id string) (product.Product, bool) {
	for _, p := range e.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return product.Product{}, false
}

func (e *Engine) clamp(n int) int {
	pages := totalPages(len(e.filtered), e.pageSize)
	if n > pages {
		n = pages
	}
	if n < 1 {
		n = 1
	}
	return n
}

// apply runs text, category, status and date stages in that order. Each
// stage keeps the relative order of the survivors.
func (e *Engine) apply() {
	c := e.criteria
	result := make([]product.Product, 0, len(e.products))
	for _, p := range e.products {
		if matchesText(p, c.TextQuery) && matchesCategory(p, c.Category) && matchesStatus(p, c.Status) {
			result = append(result, p)
		}
	}

	if start, end, ok := c.DateRange.Window(e.now(), c.StartDate, c.EndDate); ok {
		loc := e.now().Location()
		dated := result[:0]
		for _, p := range result {
			created, ok := parseCreatedAt(p.CreatedAt, loc)
			if !ok {
				continue
			}
			if !created.Before(start) && !created.After(end) {
				dated = append(dated, p)
			}
		}
		result = dated
	}

	e.filtered = result
}

func totalPages(count, size int) int {
	if size <= 0 || count == 0 {
		return 0
	}
	return (count + size - 1) / size
}

func cloneAll(in []product.Product) []product.Product {
	out := make([]product.Product, 0, len(in))
	for _, p := range in {
		out = append(out, p.Clone())
	}
	return out
}
