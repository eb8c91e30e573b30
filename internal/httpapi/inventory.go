package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"stockview-be/internal/filter"
	"stockview-be/internal/inventory"
	"stockview-be/internal/product"
	"stockview-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type searchRequest struct {
	Query string `json:"query" validate:"max=200"`
}

type filtersRequest struct {
	TextQuery *string `json:"textQuery" validate:"omitempty,max=200"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
	Status    *string `json:"status" validate:"omitempty,oneof=all 'In Stock' 'Low Stock' 'Out of Stock'"`
	DateRange *string `json:"dateRange"`
	StartDate string  `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string  `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

type dateRangeRequest struct {
	Range     string `json:"range" validate:"required"`
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	if p := r.URL.Query().Get("page"); p != "" {
		utils.WriteJSON(w, http.StatusOK, h.inventory.GoToPage(utils.ParsePage(p, 1)))
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.inventory.View())
}

func (h *Handler) nextPage(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.inventory.NextPage())
}

func (h *Handler) prevPage(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.inventory.PrevPage())
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !h.decode(w, r, &req) {
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.inventory.Search(r.Context(), req.Query))
}

func (h *Handler) applyFilters(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if !h.decode(w, r, &req) {
		return
	}

	u := filter.Update{
		TextQuery: req.TextQuery,
		Category:  req.Category,
		Status:    req.Status,
		StartDate: parseDate(req.StartDate),
		EndDate:   parseDate(req.EndDate),
	}
	if req.DateRange != nil {
		rng, err := filter.ParseDateRange(*req.DateRange)
		if err != nil {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		u.DateRange = &rng
		u.ClearCustomDates = rng != filter.DateRangeCustom
	}

	v, err := h.inventory.ApplyFilters(r.Context(), u)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) setDateRange(w http.ResponseWriter, r *http.Request) {
	var req dateRangeRequest
	if !h.decode(w, r, &req) {
		return
	}

	rng, err := filter.ParseDateRange(req.Range)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.inventory.SetDateRange(r.Context(), rng, parseDate(req.StartDate), parseDate(req.EndDate))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) resetFilters(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.inventory.ResetFilters(r.Context()))
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var in product.NewProductInput
	if !h.decode(w, r, &in) {
		return
	}

	p, err := h.inventory.AddProduct(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.inventory.Product(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) editProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.EditProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	format, err := inventory.ParseExportFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.inventory.Export(r.Context(), format); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Inventory data exported to %s successfully.", format.Target()),
	})
}

// parseDate reads a validated YYYY-MM-DD value; empty gives nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(product.DateLayout, s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// formOptions lists the choices offered by the add-product form.
func (h *Handler) formOptions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string][]string{
		"categories": product.Categories,
		"units":      product.Units,
	})
}
