package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campusreg/campusreg-go/internal/middleware"
	"github.com/campusreg/campusreg-go/internal/model"
	"github.com/campusreg/campusreg-go/internal/service"
)

// CookieConfig carries the session cookie attributes. Logout must clear the
// cookie with the same path and flags it was set with or the browser keeps it.
type CookieConfig struct {
	Secure bool
	MaxAge int
}

// AuthHandler handles HTTP requests for signup, login, logout, and the
// session probe.
type AuthHandler struct {
	service   *service.AuthService
	jwtSecret string
	cookie    CookieConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, jwtSecret string, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: svc, jwtSecret: jwtSecret, cookie: cookie}
}

// HandleSignup handles POST /api/signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Signup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrPasswordRequired),
			errors.Is(err, service.ErrNameRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			slog.Error("signup failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleLogin handles POST /api/login requests. On success the session token
// travels only in the cookie, never in the response body.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		slog.Error("login failed", "email", req.Email, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	http.SetCookie(w, h.sessionCookie(token, h.cookie.MaxAge))
	writeJSON(w, http.StatusOK, resp)
}

// HandleLogout handles POST /api/logout requests. Always succeeds; clearing
// a cookie needs no valid session.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// HandleValidateSession handles GET /api/validateJwt requests. The front end
// probes this to learn whether its cookie still verifies; the answer is 200
// either way, with an empty object when it does not.
func (h *AuthHandler) HandleValidateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCookie(r, h.jwtSecret)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"userId": userID})
}

func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
