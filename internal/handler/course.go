package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campusreg/campusreg-go/internal/middleware"
	"github.com/campusreg/campusreg-go/internal/model"
	"github.com/campusreg/campusreg-go/internal/service"
)

// CourseHandler handles HTTP requests for the course catalog and enrollment.
type CourseHandler struct {
	courses     *service.CourseService
	enrollments *service.EnrollmentService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses *service.CourseService, enrollments *service.EnrollmentService) *CourseHandler {
	return &CourseHandler{courses: courses, enrollments: enrollments}
}

// HandleListCourses handles GET /api/courses requests. Public.
func (h *CourseHandler) HandleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.List(r.Context())
	if err != nil {
		slog.Error("course listing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// HandleEnroll handles POST /api/enroll requests. The body carries the user
// id the client believes it is acting for; it must match the session user.
func (h *CourseHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	sessionUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.EnrollRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.UserID != 0 && req.UserID != sessionUserID {
		writeJSON(w, http.StatusForbidden, errorResponse("cannot enroll another user"))
		return
	}

	if err := h.enrollments.Enroll(r.Context(), req.UserID, req.CourseID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserIDRequired), errors.Is(err, service.ErrCourseIDRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUnknownCourse):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			slog.Error("enrollment failed", "userId", req.UserID, "courseId", req.CourseID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "enrolled"})
}
