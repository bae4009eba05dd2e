package service

import (
	"context"

	"github.com/campusreg/campusreg-go/internal/model"
)

// UserStore is the persistence surface the auth service needs.
// *repository.UserRepository satisfies it; tests use in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CourseStore is the persistence surface for course reads.
type CourseStore interface {
	List(ctx context.Context) ([]model.Course, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// EnrollmentStore is the persistence surface for the membership set.
type EnrollmentStore interface {
	Add(ctx context.Context, userID int64, courseID string) error
	ListCourses(ctx context.Context, userID int64) ([]model.Course, error)
}
