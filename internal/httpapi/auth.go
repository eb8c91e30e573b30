package httpapi

import (
	"net/http"

	"stockview-be/internal/auth"
	"stockview-be/internal/user"
	"stockview-be/internal/utils"
)

type loginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type authResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, u, err := h.users.Login(r.Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Without remember-me the cookie lives for the browser session only.
	ttl := user.TokenTTL
	if !req.RememberMe {
		ttl = 0
	}
	auth.SetAccessTokenCookie(w, token, ttl, h.secureCookies)
	utils.WriteJSON(w, http.StatusOK, authResponse{Token: token, User: u})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, u, err := h.users.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	auth.SetAccessTokenCookie(w, token, user.TokenTTL, h.secureCookies)
	utils.WriteJSON(w, http.StatusCreated, authResponse{Token: token, User: u})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Logout(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	auth.ClearAccessTokenCookie(w, h.secureCookies)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.users.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, ok := h.users.Current()
	if !ok {
		writeError(w, r, user.ErrNotAuthenticated)
		return
	}
	utils.WriteJSON(w, http.StatusOK, u)
}
