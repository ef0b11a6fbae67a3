package handler

import (
	"errors"
	"net/http"
	"time"

	admindomain "mealpoll-go/internal/domain/admin"
	"mealpoll-go/internal/transport/httpserver/middleware"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Admin     adminResponse `json:"admin"`
}

type adminResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	session, err := h.Admins.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, admindomain.ErrInvalidCredentials) {
			h.log.BusinessError("auth.login: rejected", err)
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "unknown user or invalid password")
			return
		}
		h.log.InternalError("auth.login: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	account, err := h.Admins.AdminByToken(r.Context(), session.Token)
	if err != nil {
		h.log.InternalError("auth.login: session readback failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Admin:     toAdminResponse(account),
	})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if token := h.auth.Token(r); token != "" {
		if err := h.Admins.Logout(r.Context(), token); err != nil {
			h.log.InternalError("auth.logout: failed", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "admin session required")
		return
	}
	writeJSON(w, http.StatusOK, toAdminResponse(account))
}

func toAdminResponse(account *admindomain.Admin) adminResponse {
	return adminResponse{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
	}
}
