package middleware

import (
	"context"
	"net/http"

	"stockview-be/internal/auth"
	"stockview-be/internal/logger"
	"stockview-be/internal/user"
	"stockview-be/internal/utils"

	"go.uber.org/zap"
)

type contextKey string

const TokenClaimsKey contextKey = "jwtClaims"

// AuthMiddleware resolves the session token into user context. Requests
// without a valid token pass through anonymously, so a stale cookie never
// blocks login or logout.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := user.ParseJWT(tokenStr, secret)
			if err != nil {
				logger.FromCtx(r.Context()).Debug("ignoring invalid token", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), TokenClaimsKey, claims)
			ctx = utils.SetUserContext(ctx, claims.UserID, claims.Email, string(claims.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			utils.WriteJSONError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession rejects requests whose token does not belong to the
// signed-in user. A token outlives logout, the session does not.
func RequireSession(current func() (user.User, bool)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, _ := utils.GetUserIDFromContext(r.Context())
			u, ok := current()
			if !ok || u.ID != userID {
				logger.FromCtx(r.Context()).Debug("no active session for token", zap.String("user_id", userID))
				utils.WriteJSONError(w, "session expired", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*user.CustomClaims, bool) {
	c, ok := ctx.Value(TokenClaimsKey).(*user.CustomClaims)
	return c, ok
}
