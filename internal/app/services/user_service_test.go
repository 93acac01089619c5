package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/calwells/degreeplanner/internal/app/models"
	"github.com/calwells/degreeplanner/internal/app/models/dto"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
	pkgAuth "github.com/calwells/degreeplanner/internal/pkg/auth"
)

func testJWTService() *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    720 * time.Hour,
		TokenIssuer: "degreeplanner.test",
	})
}

func TestUserService_Register(t *testing.T) {
	t.Run("creates student with defaults and returns token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("EmailExists", mock.Anything, "sam@example.edu").Return(false, nil)

		var created *models.User
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.User)
		}).Return(nil)

		service := NewUserService(userRepo, testJWTService())
		token, err := service.Register(context.Background(), &dto.RegisterRequest{
			Email:    "sam@example.edu",
			Name:     "Sam Student",
			Password: "hunter2hunter2",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, models.RoleStudent, created.Role)
		assert.Len(t, created.UserID, 32)
		assert.Nil(t, created.ActivePlanID)
		assert.NotEqual(t, "hunter2hunter2", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")))
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("EmailExists", mock.Anything, "taken@example.edu").Return(true, nil)

		service := NewUserService(userRepo, testJWTService())
		_, err := service.Register(context.Background(), &dto.RegisterRequest{
			Email:    "taken@example.edu",
			Name:     "Sam Student",
			Password: "hunter2hunter2",
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	account := &models.User{
		UserID:       testStudentID,
		Email:        "sam@example.edu",
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
	}

	t.Run("valid credentials issue token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByEmail", mock.Anything, "sam@example.edu").Return(account, nil)

		service := NewUserService(userRepo, testJWTService())
		token, err := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "sam@example.edu",
			Password: "hunter2hunter2",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByEmail", mock.Anything, "sam@example.edu").Return(account, nil)
		userRepo.On("GetByEmail", mock.Anything, "nobody@example.edu").Return(nil, apperrors.ErrUserNotFound)

		service := NewUserService(userRepo, testJWTService())

		_, errWrongPassword := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "sam@example.edu",
			Password: "wrong-password",
		})
		_, errUnknownEmail := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.edu",
			Password: "hunter2hunter2",
		})

		assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownEmail, apperrors.ErrInvalidCredentials)
	})
}

func TestUserService_GetAdvisees(t *testing.T) {
	t.Run("faculty caller lists advisees", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		faculty := testFaculty()
		userRepo.On("GetByID", mock.Anything, testFacultyID).Return(faculty, nil)
		userRepo.On("GetByIDs", mock.Anything, faculty.Advisees).Return([]*models.User{
			{UserID: testStudentID, Name: "Sam Student", Email: "sam@example.edu"},
		}, nil)

		service := NewUserService(userRepo, testJWTService())
		advisees, err := service.GetAdvisees(context.Background(), testFacultyID)

		assert.NoError(t, err)
		assert.Equal(t, []dto.AdviseeResponse{{
			StudentName:  "Sam Student",
			StudentEmail: "sam@example.edu",
			StudentID:    testStudentID,
		}}, advisees)
	})

	t.Run("student caller rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, testStudentID).Return(testStudent(nil), nil)

		service := NewUserService(userRepo, testJWTService())
		_, err := service.GetAdvisees(context.Background(), testStudentID)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		userRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	})
}
