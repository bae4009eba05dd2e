package service

import (
	"context"
	"errors"

	"github.com/campusreg/campusreg-go/internal/model"
)

var (
	ErrUserIDRequired   = errors.New("userId is required")
	ErrCourseIDRequired = errors.New("courseId is required")
	ErrUnknownCourse    = errors.New("course does not exist")
)

// EnrollmentService validates and records user/course memberships.
type EnrollmentService struct {
	enrollments EnrollmentStore
	courses     CourseStore
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollments EnrollmentStore, courses CourseStore) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		courses:     courses,
	}
}

// Enroll records that the user is enrolled in the course. Enrolling twice
// is a no-op; enrolling in a course that does not exist is rejected rather
// than inserting a dangling reference.
func (s *EnrollmentService) Enroll(ctx context.Context, userID int64, courseID string) error {
	if userID == 0 {
		return ErrUserIDRequired
	}
	if courseID == "" {
		return ErrCourseIDRequired
	}

	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUnknownCourse
	}

	return s.enrollments.Add(ctx, userID, courseID)
}

// ListEnrolled resolves the user's enrolled course identifiers to full
// course records. Returns an empty slice, not nil, when there are none.
func (s *EnrollmentService) ListEnrolled(ctx context.Context, userID int64) ([]model.Course, error) {
	if userID == 0 {
		return nil, ErrUserIDRequired
	}
	courses, err := s.enrollments.ListCourses(ctx, userID)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}
