// Package httpapi exposes the inventory workspace and the auth flow as a
// JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"stockview-be/internal/inventory"
	"stockview-be/internal/notify"
	"stockview-be/internal/user"
	"stockview-be/internal/utils"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// Feed is the notification buffer drained by GET /api/notifications.
type Feed interface {
	Drain() []notify.Notification
}

type Handler struct {
	inventory     inventory.Service
	users         user.Service
	feed          Feed
	validator     *validator.Validate
	secureCookies bool
}

func NewHandler(inv inventory.Service, users user.Service, feed Feed, secureCookies bool) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		inventory:     inv,
		users:         users,
		feed:          feed,
		validator:     v,
		secureCookies: secureCookies,
	}
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decode reads a JSON body into dst and validates it. On failure the error
// response is already written and false is returned.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		utils.WriteJSONError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		utils.WriteJSON(w, http.StatusBadRequest, validationResponse{Error: "validation failed", Fields: fields})
		return false
	}
	return true
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) notifications(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"notifications": h.feed.Drain()})
}
