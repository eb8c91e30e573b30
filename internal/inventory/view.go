package inventory

import (
	"stockview-be/internal/filter"
	"stockview-be/internal/product"
)

// View is everything the inventory page renders for the current state.
type View struct {
	Items      []product.Product `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalCount int               `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
	// From and To are the 1-based bounds of the "Showing x to y of z" line.
	From int `json:"from"`
	To   int `json:"to"`

	Criteria         filter.Criteria `json:"criteria"`
	DateLabel        string          `json:"dateLabel"`
	Categories       []string        `json:"categories"`
	ShowClearFilters bool            `json:"showClearFilters"`
}

func buildView(e *filter.Engine) View {
	page := e.CurrentPage()
	c := e.Criteria()

	v := View{
		Items:            page.Items,
		Page:             page.Number,
		PageSize:         page.Size,
		TotalCount:       page.TotalCount,
		TotalPages:       page.TotalPages,
		Criteria:         c,
		DateLabel:        c.DateRange.Label(c.StartDate, c.EndDate),
		Categories:       product.UniqueCategories(e.Collection()),
		ShowClearFilters: page.TotalCount == 0 && !c.IsDefault(),
	}
	if len(page.Items) > 0 {
		v.From = (page.Number-1)*page.Size + 1
		v.To = v.From + len(page.Items) - 1
	}
	return v
}
