package filter

import (
	"strings"
	"time"

	"stockview-be/internal/product"
)

// All is the sentinel that disables the category and status filters.
const All = "all"

// Criteria is the active combination of text, category, status and date
// filters.
type Criteria struct {
	TextQuery string     `json:"textQuery"`
	Category  string     `json:"category"`
	Status    string     `json:"status"`
	DateRange DateRange  `json:"dateRange"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

func DefaultCriteria() Criteria {
	return Criteria{
		Category:  All,
		Status:    All,
		DateRange: DateRangeAll,
	}
}

// IsDefault reports whether no criterion narrows the collection.
func (c Criteria) IsDefault() bool {
	return strings.TrimSpace(c.TextQuery) == "" &&
		c.Category == All &&
		c.Status == All &&
		c.DateRange == DateRangeAll
}

// Update is a partial criteria change. Nil fields keep the current value.
type Update struct {
	TextQuery *string    `json:"textQuery,omitempty"`
	Category  *string    `json:"category,omitempty"`
	Status    *string    `json:"status,omitempty"`
	DateRange *DateRange `json:"dateRange,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	// ClearCustomDates drops both custom bounds before StartDate/EndDate apply.
	ClearCustomDates bool `json:"clearCustomDates,omitempty"`
}

func (c Criteria) merge(u Update) Criteria {
	if u.TextQuery != nil {
		c.TextQuery = *u.TextQuery
	}
	if u.Category != nil {
		c.Category = orAll(*u.Category)
	}
	if u.Status != nil {
		c.Status = orAll(*u.Status)
	}
	if u.DateRange != nil {
		c.DateRange = *u.DateRange
		if c.DateRange == "" {
			c.DateRange = DateRangeAll
		}
	}
	if u.ClearCustomDates {
		c.StartDate, c.EndDate = nil, nil
	}
	if u.StartDate != nil {
		d := *u.StartDate
		c.StartDate = &d
	}
	if u.EndDate != nil {
		d := *u.EndDate
		c.EndDate = &d
	}
	return c
}

func orAll(v string) string {
	if v == "" {
		return All
	}
	return v
}

func matchesText(p product.Product, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.SKU), q)
}

func matchesCategory(p product.Product, category string) bool {
	return category == All || p.Category == category
}

func matchesStatus(p product.Product, status string) bool {
	return status == All || string(p.Status()) == status
}
