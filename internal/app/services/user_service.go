package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/calwells/degreeplanner/internal/app/models"
	"github.com/calwells/degreeplanner/internal/app/models/dto"
	"github.com/calwells/degreeplanner/internal/app/repositories"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
	pkgAuth "github.com/calwells/degreeplanner/internal/pkg/auth"
	"github.com/calwells/degreeplanner/internal/pkg/identifier"
	"github.com/calwells/degreeplanner/internal/pkg/logger"
)

// UserService handles registration, login and advisee listing
type UserService struct {
	userRepo   repositories.IUserRepository
	jwtService *pkgAuth.JWTService
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.IUserRepository, jwtService *pkgAuth.JWTService) *UserService {
	return &UserService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new student account and returns a signed token.
// Input format validation happens at the controller; this checks the email is
// unused and persists the user with student defaults.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (string, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return "", apperrors.ErrEmailAlreadyExists
	}

	passwordHash, err := pkgAuth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		UserID:       identifier.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleStudent,
		CurrentTerm:  models.TermSpring,
		CurrentYear:  models.DefaultCatalogYear,
		Advisees:     []string{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	logger.Info().Str("userId", user.UserID).Msg("User registered")

	token, err := s.jwtService.GenerateToken(user.UserID)
	if err != nil {
		return "", err
	}

	return token, nil
}

// Login verifies credentials and returns a signed token. Unknown emails and
// wrong passwords produce the same error.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error retrieving user: %w", err)
	}

	if !pkgAuth.CheckPassword(user.PasswordHash, req.Password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.UserID)
	if err != nil {
		return "", err
	}

	return token, nil
}

// GetAdvisees lists the students advised by the given faculty caller.
// Dangling advisee ids are skipped, not errors.
func (s *UserService) GetAdvisees(ctx context.Context, callerID string) ([]dto.AdviseeResponse, error) {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("error retrieving caller: %w", err)
	}

	if caller.Role != models.RoleFaculty {
		return nil, apperrors.ErrUnauthorized
	}

	advisees, err := s.userRepo.GetByIDs(ctx, caller.Advisees)
	if err != nil {
		return nil, fmt.Errorf("error retrieving advisees: %w", err)
	}

	responses := make([]dto.AdviseeResponse, 0, len(advisees))
	for _, advisee := range advisees {
		responses = append(responses, dto.AdviseeResponse{
			StudentName:  advisee.Name,
			StudentEmail: advisee.Email,
			StudentID:    advisee.UserID,
		})
	}

	return responses, nil
}
