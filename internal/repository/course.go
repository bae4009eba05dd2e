package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campusreg/campusreg-go/internal/model"
)

var ErrCourseNotFound = errors.New("course not found")

const courseColumns = `string_id, title, description, schedule, classroom_number, maximum_capacity, credit_hours, tuition_cost`

// CourseRepository handles course persistence operations. Courses are
// bulk-loaded at startup and read-only afterwards.
type CourseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns all courses.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY string_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetByID retrieves a single course by its string identifier.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	c := &model.Course{}
	err := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE string_id = $1`, id).Scan(
		&c.StringID, &c.Title, &c.Description, &c.Schedule,
		&c.ClassroomNumber, &c.MaximumCapacity, &c.CreditHours, &c.TuitionCost,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

// Exists reports whether a course with the given identifier exists.
func (r *CourseRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM courses WHERE string_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Count returns the number of course rows.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// InsertBatch inserts courses inside a single transaction. Used by the
// startup bootstrap; either every row commits or none does.
func (r *CourseRepository) InsertBatch(ctx context.Context, courses []model.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO courses (`+courseColumns+`)
	    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	    ON CONFLICT (string_id) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range courses {
		if _, err := stmt.ExecContext(ctx,
			c.StringID, c.Title, c.Description, c.Schedule,
			c.ClassroomNumber, c.MaximumCapacity, c.CreditHours, c.TuitionCost,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func scanCourses(rows *sql.Rows) ([]model.Course, error) {
	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.StringID, &c.Title, &c.Description, &c.Schedule,
			&c.ClassroomNumber, &c.MaximumCapacity, &c.CreditHours, &c.TuitionCost,
		); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
