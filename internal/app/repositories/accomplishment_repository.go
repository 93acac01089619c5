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

// IAccomplishmentRepository defines the interface for accomplishment
// (major/minor) catalog reads.
type IAccomplishmentRepository interface {
	Create(ctx context.Context, accomplishment *models.Accomplishment) error
	ListSummariesByIDs(ctx context.Context, ids []string) ([]*models.Accomplishment, error)
	ListRequirementsByIDs(ctx context.Context, ids []string) ([]models.RequiredCourse, error)
	ListByCatalogYear(ctx context.Context, year int) ([]*models.Accomplishment, error)
	CountByIDs(ctx context.Context, ids []string) (int, error)
	FindMinorByName(ctx context.Context, name string, year int) (*models.Accomplishment, error)
}

// AccomplishmentRepository handles database operations for accomplishments
type AccomplishmentRepository struct {
	db *pgxpool.Pool
}

// NewAccomplishmentRepository creates a new accomplishment repository
func NewAccomplishmentRepository(db *pgxpool.Pool) *AccomplishmentRepository {
	return &AccomplishmentRepository{
		db: db,
	}
}

// Create inserts an accomplishment record. Used by seeding only.
func (r *AccomplishmentRepository) Create(ctx context.Context, accomplishment *models.Accomplishment) error {
	requirements := accomplishment.Requirements
	if requirements == nil {
		requirements = []models.RequiredCourse{}
	}

	requirementsJSON, err := json.Marshal(requirements)
	if err != nil {
		return fmt.Errorf("error encoding requirements: %w", err)
	}

	query := `
		INSERT INTO accomplishments (accomplishment_id, name, type, years_offered, requirements)
		VALUES ($1, $2, $3, $4, $5::jsonb)
		ON CONFLICT (accomplishment_id) DO NOTHING
	`

	_, err = r.db.Exec(ctx, query,
		accomplishment.AccomplishmentID,
		accomplishment.Name,
		accomplishment.Type,
		accomplishment.YearsOffered,
		string(requirementsJSON),
	)
	if err != nil {
		return fmt.Errorf("error creating accomplishment: %w", err)
	}

	return nil
}

// ListSummariesByIDs retrieves id, name and type for the given accomplishment
// ids. Requirement lists are not loaded; plan summaries do not need them.
func (r *AccomplishmentRepository) ListSummariesByIDs(ctx context.Context, ids []string) ([]*models.Accomplishment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT accomplishment_id, name, type
		FROM accomplishments
		WHERE accomplishment_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving accomplishments: %w", err)
	}
	defer rows.Close()

	var accomplishments []*models.Accomplishment
	for rows.Next() {
		var a models.Accomplishment
		if err := rows.Scan(&a.AccomplishmentID, &a.Name, &a.Type); err != nil {
			return nil, err
		}
		accomplishments = append(accomplishments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accomplishments, nil
}

// ListRequirementsByIDs returns the flattened requirement entries across all
// of the given accomplishments, skipping accomplishments with empty
// requirement lists. Entries are not deduplicated here; shaping is the
// aggregator's concern.
func (r *AccomplishmentRepository) ListRequirementsByIDs(ctx context.Context, ids []string) ([]models.RequiredCourse, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT requirements
		FROM accomplishments
		WHERE accomplishment_id = ANY($1) AND jsonb_array_length(requirements) > 0
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving requirements: %w", err)
	}
	defer rows.Close()

	var all []models.RequiredCourse
	for rows.Next() {
		var requirementsJSON []byte
		if err := rows.Scan(&requirementsJSON); err != nil {
			return nil, err
		}

		var requirements []models.RequiredCourse
		if err := json.Unmarshal(requirementsJSON, &requirements); err != nil {
			return nil, fmt.Errorf("error decoding requirements: %w", err)
		}
		all = append(all, requirements...)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return all, nil
}

// ListByCatalogYear returns every accomplishment offered in the given catalog
// year, including requirement lists.
func (r *AccomplishmentRepository) ListByCatalogYear(ctx context.Context, year int) ([]*models.Accomplishment, error) {
	query := `
		SELECT accomplishment_id, name, type, requirements
		FROM accomplishments
		WHERE $1 = ANY(years_offered)
	`

	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("error retrieving accomplishments for catalog year: %w", err)
	}
	defer rows.Close()

	var accomplishments []*models.Accomplishment
	for rows.Next() {
		var a models.Accomplishment
		var requirementsJSON []byte
		if err := rows.Scan(&a.AccomplishmentID, &a.Name, &a.Type, &requirementsJSON); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(requirementsJSON, &a.Requirements); err != nil {
			return nil, fmt.Errorf("error decoding requirements: %w", err)
		}
		accomplishments = append(accomplishments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accomplishments, nil
}

// CountByIDs counts how many of the given ids resolve to existing
// accomplishments. Used to validate submitted major/minor id lists.
func (r *AccomplishmentRepository) CountByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM accomplishments WHERE accomplishment_id = ANY($1)`, ids).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting accomplishments: %w", err)
	}

	return count, nil
}

// FindMinorByName retrieves the minor with the given name offered in the
// given catalog year. Used for the default minor seeded into new plans.
func (r *AccomplishmentRepository) FindMinorByName(ctx context.Context, name string, year int) (*models.Accomplishment, error) {
	query := `
		SELECT accomplishment_id, name, type
		FROM accomplishments
		WHERE name = $1 AND type = $2 AND $3 = ANY(years_offered)
	`

	var a models.Accomplishment
	err := r.db.QueryRow(ctx, query, name, models.AccomplishmentMinor, year).
		Scan(&a.AccomplishmentID, &a.Name, &a.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving default minor: %w", err)
	}

	return &a, nil
}
