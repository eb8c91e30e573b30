package httpapi

import (
	"net/http"

	"stockview-be/internal/logger"
	"stockview-be/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type RouterParams struct {
	Handler    *Handler
	Limiter    *middleware.RateLimiter
	JWTSecret  string
	CORSOrigin string
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	if p.CORSOrigin != "" {
		r.Use(middleware.CORS(p.CORSOrigin))
	}
	r.Use(middleware.AuthMiddleware(p.JWTSecret))
	r.Use(middleware.UserLogFields)
	if p.Limiter != nil {
		r.Use(p.Limiter.Middleware)
	}

	h := p.Handler
	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/notifications", h.notifications)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/signup", h.signup)
			r.Post("/logout", h.logout)
			r.Post("/forgot-password", h.forgotPassword)
			r.Get("/me", h.me)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RequireSession(h.users.Current))

			r.Get("/", h.getInventory)
			r.Post("/next", h.nextPage)
			r.Post("/prev", h.prevPage)
			r.Post("/search", h.search)
			r.Post("/filters", h.applyFilters)
			r.Delete("/filters", h.resetFilters)
			r.Post("/date-range", h.setDateRange)
			r.Get("/form-options", h.formOptions)
			r.Post("/products", h.addProduct)
			r.Get("/products/{id}", h.getProduct)
			r.Delete("/products/{id}", h.deleteProduct)
			r.Post("/products/{id}/edit", h.editProduct)
			r.Post("/export/{format}", h.export)
		})
	})

	return r
}
