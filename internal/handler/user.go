package handler

import (
	"log/slog"
	"net/http"

	"github.com/campusreg/campusreg-go/internal/middleware"
	"github.com/campusreg/campusreg-go/internal/service"
)

// UserHandler handles HTTP requests for the authenticated user's own data.
type UserHandler struct {
	auth        *service.AuthService
	enrollments *service.EnrollmentService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(auth *service.AuthService, enrollments *service.EnrollmentService) *UserHandler {
	return &UserHandler{auth: auth, enrollments: enrollments}
}

// HandleUserDetails handles GET /api/userDetails requests.
func (h *UserHandler) HandleUserDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.auth.GetUser(r.Context(), userID)
	if err != nil {
		slog.Error("user details lookup failed", "userId", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUserCourses handles GET /api/userCourses requests.
func (h *UserHandler) HandleUserCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	courses, err := h.enrollments.ListEnrolled(r.Context(), userID)
	if err != nil {
		slog.Error("enrolled courses lookup failed", "userId", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, courses)
}
