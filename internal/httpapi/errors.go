package httpapi

import (
	"context"
	"errors"
	"net/http"

	"stockview-be/internal/backend"
	"stockview-be/internal/inventory"
	"stockview-be/internal/logger"
	"stockview-be/internal/product"
	"stockview-be/internal/user"
	"stockview-be/internal/utils"

	"go.uber.org/zap"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, product.ErrDuplicateProduct):
		return http.StatusConflict
	case errors.Is(err, inventory.ErrInvalidStatus),
		errors.Is(err, inventory.ErrInvalidDateRange),
		errors.Is(err, inventory.ErrInvalidExportFormat):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, backend.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		msg = http.StatusText(code)
	}
	utils.WriteJSONError(w, msg, code)
}
