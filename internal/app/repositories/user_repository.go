package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calwells/degreeplanner/internal/app/models"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SetActivePlan(ctx context.Context, userID string, planID *string) error
	RemoveAdvisee(ctx context.Context, facultyID, studentID string) error
	GetByIDs(ctx context.Context, userIDs []string) ([]*models.User, error)
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `user_id, name, email, password_hash, role, active_plan_id, current_term, current_year, advisor_id, advisees`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ActivePlanID,
		&user.CurrentTerm,
		&user.CurrentYear,
		&user.Advisor,
		&user.Advisees,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (user_id, name, email, password_hash, role, active_plan_id, current_term, current_year, advisor_id, advisees)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.ActivePlanID,
		user.CurrentTerm,
		user.CurrentYear,
		user.Advisor,
		user.Advisees,
	)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks whether a user with the given email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// SetActivePlan updates the user's active-plan pointer. A nil planID clears it.
func (r *UserRepository) SetActivePlan(ctx context.Context, userID string, planID *string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE users SET active_plan_id = $2 WHERE user_id = $1`, userID, planID)
	if err != nil {
		return fmt.Errorf("error updating active plan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// RemoveAdvisee prunes a student id from a faculty user's advisee list.
// Used to self-heal stale advisee links.
func (r *UserRepository) RemoveAdvisee(ctx context.Context, facultyID, studentID string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE users SET advisees = array_remove(advisees, $2) WHERE user_id = $1`,
		facultyID, studentID)
	if err != nil {
		return fmt.Errorf("error removing advisee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// GetByIDs retrieves the users whose ids appear in userIDs. Missing ids are
// skipped, not errors.
func (r *UserRepository) GetByIDs(ctx context.Context, userIDs []string) ([]*models.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
