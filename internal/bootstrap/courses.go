package bootstrap

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/campusreg/campusreg-go/internal/model"
)

// CourseWriter is the slice of the course repository the bootstrap needs.
type CourseWriter interface {
	Count(ctx context.Context) (int, error)
	InsertBatch(ctx context.Context, courses []model.Course) error
}

// csv column order, matching the original course data export:
// string_id,title,description,schedule,classroom_number,maximum_capacity,credit_hours,tuition_cost
const courseFields = 8

// LoadCourses seeds the course table from a CSV file when the table is
// empty. Runs once at startup; a missing file is logged and skipped so the
// app still serves whatever is already in the database.
func LoadCourses(ctx context.Context, repo CourseWriter, path string) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting courses: %w", err)
	}
	if n > 0 {
		slog.Info("course table already populated", "count", n)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("course data file not found, skipping bootstrap", "path", path)
			return nil
		}
		return fmt.Errorf("opening course data: %w", err)
	}
	defer f.Close()

	courses, err := ParseCourses(f)
	if err != nil {
		return fmt.Errorf("parsing course data: %w", err)
	}

	if err := repo.InsertBatch(ctx, courses); err != nil {
		return fmt.Errorf("inserting courses: %w", err)
	}

	slog.Info("course table seeded", "count", len(courses), "path", path)
	return nil
}

// ParseCourses reads course records from CSV data with a header row.
func ParseCourses(r io.Reader) ([]model.Course, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = courseFields

	// header
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("course data is empty")
		}
		return nil, err
	}

	var courses []model.Course
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		course, err := parseCourse(record)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, nil
}

func parseCourse(record []string) (model.Course, error) {
	capacity, err := strconv.Atoi(record[5])
	if err != nil {
		return model.Course{}, fmt.Errorf("course %s: bad maximum_capacity %q", record[0], record[5])
	}
	credits, err := strconv.Atoi(record[6])
	if err != nil {
		return model.Course{}, fmt.Errorf("course %s: bad credit_hours %q", record[0], record[6])
	}
	cost, err := strconv.ParseFloat(record[7], 64)
	if err != nil {
		return model.Course{}, fmt.Errorf("course %s: bad tuition_cost %q", record[0], record[7])
	}

	return model.Course{
		StringID:        record[0],
		Title:           record[1],
		Description:     record[2],
		Schedule:        record[3],
		ClassroomNumber: record[4],
		MaximumCapacity: capacity,
		CreditHours:     credits,
		TuitionCost:     cost,
	}, nil
}
