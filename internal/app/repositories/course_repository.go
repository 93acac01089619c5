package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calwells/degreeplanner/internal/app/models"
)

// ICourseRepository defines the interface for course catalog reads. Courses
// are loaded by an external data loader; this service never mutates them
// outside of seeding.
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	DistinctYearsOffered(ctx context.Context) ([]int, error)
	ListGenEdIDs(ctx context.Context) ([]string, error)
	ListByCatalogYear(ctx context.Context, year int) ([]*models.Course, error)
	Count(ctx context.Context) (int, error)
}

// CourseRepository handles database operations for catalog courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a course record. Used by seeding only.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_id, name, description, credits, years_offered, is_gen_ed)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (course_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		course.CourseID,
		course.Name,
		course.Description,
		course.Credits,
		course.YearsOffered,
		course.IsGenEd,
	)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// DistinctYearsOffered returns every catalog year that at least one course is
// offered in. This is the "available catalogs" list shown for plan creation.
func (r *CourseRepository) DistinctYearsOffered(ctx context.Context) ([]int, error) {
	query := `SELECT DISTINCT unnest(years_offered) AS year FROM courses ORDER BY year`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving catalog years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return years, nil
}

// ListGenEdIDs returns the ids of all gen-ed flagged courses, across every
// catalog year. Gen-eds apply globally.
func (r *CourseRepository) ListGenEdIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT course_id FROM courses WHERE is_gen_ed`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving gen-ed courses: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// ListByCatalogYear returns every course offered in the given catalog year.
// YearsOffered and IsGenEd are omitted from the results: the catalog slice
// sent to clients strips them.
func (r *CourseRepository) ListByCatalogYear(ctx context.Context, year int) ([]*models.Course, error) {
	query := `
		SELECT course_id, name, description, credits
		FROM courses
		WHERE $1 = ANY(years_offered)
	`

	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses for catalog year: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.CourseID,
			&course.Name,
			&course.Description,
			&course.Credits,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Count returns the number of catalog courses
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
