package middleware

import (
	"net/http"

	"stockview-be/internal/logger"
	"stockview-be/internal/utils"

	"go.uber.org/zap"
)

// UserLogFields tags every log line written for the request with the
// authenticated user. Mount it after AuthMiddleware.
func UserLogFields(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithFields(r.Context(),
			zap.String("user_id", userID),
			zap.String("role", utils.GetUserRoleFromContext(r.Context())),
		)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
