package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calwells/degreeplanner/internal/app/models"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
)

// IPlanRepository defines the interface for plan-related database operations.
// Every lookup and mutation is scoped to the owning student id: a plan id
// belonging to another student behaves exactly like a missing plan.
type IPlanRepository interface {
	Create(ctx context.Context, plan *models.Plan) error
	GetByID(ctx context.Context, studentID, planID string) (*models.Plan, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.Plan, error)
	Exists(ctx context.Context, studentID, planID string) (bool, error)
	Delete(ctx context.Context, studentID, planID string) error
	UpdatePlacements(ctx context.Context, studentID, planID string, placements []models.PlannedCourse) error
	RemovePlacement(ctx context.Context, studentID, planID, courseID string) error
	UpdateStudentNotes(ctx context.Context, studentID, planID, notes string) error
	UpdateAdvisorNotes(ctx context.Context, studentID, planID, notes string) error
	UpdateMetadata(ctx context.Context, studentID, planID, name string, accomplishmentIDs []string) error
	UpdateYearCount(ctx context.Context, studentID, planID string, yearCount int) error
}

// PlanRepository handles database operations for plans
type PlanRepository struct {
	db *pgxpool.Pool
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{
		db: db,
	}
}

const planColumns = `plan_id, student_id, name, courses, accomplishments, catalog_year, year_count, student_notes, advisor_notes`

func scanPlan(row pgx.Row) (*models.Plan, error) {
	var plan models.Plan
	var coursesJSON []byte
	err := row.Scan(
		&plan.PlanID,
		&plan.StudentID,
		&plan.Name,
		&coursesJSON,
		&plan.Accomplishments,
		&plan.CatalogYear,
		&plan.YearCount,
		&plan.StudentNotes,
		&plan.AdvisorNotes,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(coursesJSON, &plan.Courses); err != nil {
		return nil, fmt.Errorf("error decoding plan courses: %w", err)
	}

	return &plan, nil
}

func marshalPlacements(placements []models.PlannedCourse) (string, error) {
	if placements == nil {
		placements = []models.PlannedCourse{}
	}
	b, err := json.Marshal(placements)
	if err != nil {
		return "", fmt.Errorf("error encoding plan courses: %w", err)
	}
	return string(b), nil
}

// Create inserts a new plan record
func (r *PlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	coursesJSON, err := marshalPlacements(plan.Courses)
	if err != nil {
		return err
	}

	if plan.Accomplishments == nil {
		plan.Accomplishments = []string{}
	}

	query := `
		INSERT INTO plans (plan_id, student_id, name, courses, accomplishments, catalog_year, year_count, student_notes, advisor_notes)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $8, $9)
	`

	_, err = r.db.Exec(ctx, query,
		plan.PlanID,
		plan.StudentID,
		plan.Name,
		coursesJSON,
		plan.Accomplishments,
		plan.CatalogYear,
		plan.YearCount,
		plan.StudentNotes,
		plan.AdvisorNotes,
	)
	if err != nil {
		return fmt.Errorf("error creating plan: %w", err)
	}

	return nil
}

// GetByID retrieves a plan owned by the given student
func (r *PlanRepository) GetByID(ctx context.Context, studentID, planID string) (*models.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE student_id = $1 AND plan_id = $2`

	plan, err := scanPlan(r.db.QueryRow(ctx, query, studentID, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}

	return plan, nil
}

// ListByStudent retrieves every plan owned by the given student
func (r *PlanRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE student_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// Exists checks whether the student owns a plan with the given id
func (r *PlanRepository) Exists(ctx context.Context, studentID, planID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM plans WHERE student_id = $1 AND plan_id = $2)`,
		studentID, planID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking plan existence: %w", err)
	}

	return exists, nil
}

// Delete removes a plan owned by the given student
func (r *PlanRepository) Delete(ctx context.Context, studentID, planID string) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM plans WHERE student_id = $1 AND plan_id = $2`, studentID, planID)
	if err != nil {
		return fmt.Errorf("error deleting plan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

// UpdatePlacements overwrites the plan's full placement list
func (r *PlanRepository) UpdatePlacements(ctx context.Context, studentID, planID string, placements []models.PlannedCourse) error {
	coursesJSON, err := marshalPlacements(placements)
	if err != nil {
		return err
	}

	cmdTag, err := r.db.Exec(ctx,
		`UPDATE plans SET courses = $3::jsonb WHERE student_id = $1 AND plan_id = $2`,
		studentID, planID, coursesJSON)
	if err != nil {
		return fmt.Errorf("error updating plan courses: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

// RemovePlacement drops the placement for a course id if one exists. Removing
// a course that is not placed succeeds; only a missing plan is an error.
func (r *PlanRepository) RemovePlacement(ctx context.Context, studentID, planID, courseID string) error {
	query := `
		UPDATE plans
		SET courses = COALESCE(
			(SELECT jsonb_agg(pc) FROM jsonb_array_elements(courses) pc
			 WHERE pc->>'plannedCourse' <> $3),
			'[]'::jsonb)
		WHERE student_id = $1 AND plan_id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, studentID, planID, courseID)
	if err != nil {
		return fmt.Errorf("error removing plan course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

// UpdateStudentNotes overwrites the student-notes field
func (r *PlanRepository) UpdateStudentNotes(ctx context.Context, studentID, planID, notes string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE plans SET student_notes = $3 WHERE student_id = $1 AND plan_id = $2`,
		studentID, planID, notes)
	if err != nil {
		return fmt.Errorf("error updating student notes: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

// UpdateAdvisorNotes overwrites the advisor-notes field
func (r *PlanRepository) UpdateAdvisorNotes(ctx context.Context, studentID, planID, notes string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE plans SET advisor_notes = $3 WHERE student_id = $1 AND plan_id = $2`,
		studentID, planID, notes)
	if err != nil {
		return fmt.Errorf("error updating advisor notes: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

// UpdateMetadata overwrites the plan name and the full accomplishment-id set.
// This is a full replace: selections absent from accomplishmentIDs are dropped.
func (r *PlanRepository) UpdateMetadata(ctx context.Context, studentID, planID, name string, accomplishmentIDs []string) error {
	if accomplishmentIDs == nil {
		accomplishmentIDs = []string{}
	}

	cmdTag, err := r.db.Exec(ctx,
		`UPDATE plans SET name = $3, accomplishments = $4 WHERE student_id = $1 AND plan_id = $2`,
		studentID, planID, name, accomplishmentIDs)
	if err != nil {
		return fmt.Errorf("error updating plan metadata: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

// UpdateYearCount overwrites the plan's year span. Placements that fall
// outside the new span are not cascade-deleted here; the client removes them
// with separate remove-course calls.
func (r *PlanRepository) UpdateYearCount(ctx context.Context, studentID, planID string, yearCount int) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE plans SET year_count = $3 WHERE student_id = $1 AND plan_id = $2`,
		studentID, planID, yearCount)
	if err != nil {
		return fmt.Errorf("error updating year count: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}
