package repository

import (
	"context"
	"database/sql"

	"github.com/campusreg/campusreg-go/internal/model"
)

// EnrollmentRepository handles the user/course membership set.
type EnrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(db *sql.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Add records a (user, course) membership. Enrolling twice in the same
// course is a no-op; the composite primary key plus ON CONFLICT keeps the
// membership a set in a single atomic statement.
func (r *EnrollmentRepository) Add(ctx context.Context, userID int64, courseID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO enrollments (user_id, course_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, course_id) DO NOTHING`,
		userID, courseID,
	)
	return err
}

// ListCourses resolves a user's enrolled course identifiers to full course
// records.
func (r *EnrollmentRepository) ListCourses(ctx context.Context, userID int64) ([]model.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.string_id, c.title, c.description, c.schedule, c.classroom_number, c.maximum_capacity, c.credit_hours, c.tuition_cost
		 FROM enrollments e
		 JOIN courses c ON c.string_id = e.course_id
		 WHERE e.user_id = $1
		 ORDER BY e.enrolled_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}
