package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/calwells/degreeplanner/internal/app/models"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
)

// MockUserRepository is a mock implementation of IUserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetActivePlan(ctx context.Context, userID string, planID *string) error {
	args := m.Called(ctx, userID, planID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveAdvisee(ctx context.Context, facultyID, studentID string) error {
	args := m.Called(ctx, facultyID, studentID)
	return args.Error(0)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, userIDs []string) ([]*models.User, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

const (
	studentID = "11111111111111111111111111111111"
	facultyID = "22222222222222222222222222222222"
	otherID   = "33333333333333333333333333333333"
)

func studentUser() *models.User {
	advisor := facultyID
	return &models.User{
		UserID:  studentID,
		Name:    "Sam Student",
		Role:    models.RoleStudent,
		Advisor: &advisor,
	}
}

func facultyUser() *models.User {
	return &models.User{
		UserID:   facultyID,
		Name:     "Fran Faculty",
		Role:     models.RoleFaculty,
		Advisees: []string{studentID},
	}
}

func TestResolve_SelfStudent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	student := studentUser()
	mockRepo.On("GetByID", mock.Anything, studentID).Return(student, nil)

	resolver := NewAccessResolver(mockRepo)
	res, err := resolver.Resolve(context.Background(), studentID, "")

	assert.NoError(t, err)
	assert.Equal(t, student, res.Subject)
	assert.Equal(t, student, res.Actor)
	assert.False(t, res.ActorIsFaculty())
	mockRepo.AssertExpectations(t)
}

func TestResolve_SelfStudentWithRedundantID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	student := studentUser()
	mockRepo.On("GetByID", mock.Anything, studentID).Return(student, nil)

	resolver := NewAccessResolver(mockRepo)
	res, err := resolver.Resolve(context.Background(), studentID, studentID)

	assert.NoError(t, err)
	assert.Equal(t, student, res.Subject)
	assert.Equal(t, student, res.Actor)
	mockRepo.AssertExpectations(t)
}

func TestResolve_StudentOnOtherStudent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByID", mock.Anything, studentID).Return(studentUser(), nil)

	resolver := NewAccessResolver(mockRepo)
	res, err := resolver.Resolve(context.Background(), studentID, otherID)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockRepo.AssertExpectations(t)
}

func TestResolve_FacultyWithoutTarget(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByID", mock.Anything, facultyID).Return(facultyUser(), nil)

	resolver := NewAccessResolver(mockRepo)
	res, err := resolver.Resolve(context.Background(), facultyID, "")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockRepo.AssertExpectations(t)
}

func TestResolve_FacultyOnAdvisee(t *testing.T) {
	mockRepo := new(MockUserRepository)
	faculty := facultyUser()
	student := studentUser()
	mockRepo.On("GetByID", mock.Anything, facultyID).Return(faculty, nil)
	mockRepo.On("GetByID", mock.Anything, studentID).Return(student, nil)

	resolver := NewAccessResolver(mockRepo)
	res, err := resolver.Resolve(context.Background(), facultyID, studentID)

	assert.NoError(t, err)
	assert.Equal(t, student, res.Subject)
	assert.Equal(t, faculty, res.Actor)
	assert.True(t, res.ActorIsFaculty())
	mockRepo.AssertExpectations(t)
}

func TestResolve_FacultyOnNonAdvisee(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByID", mock.Anything, facultyID).Return(facultyUser(), nil)

	resolver := NewAccessResolver(mockRepo)
	res, err := resolver.Resolve(context.Background(), facultyID, otherID)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	// No lookup of the target and no pruning for ids outside the advisee list.
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, otherID)
	mockRepo.AssertNotCalled(t, "RemoveAdvisee", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestResolve_StaleAdviseeLinkPruned(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByID", mock.Anything, facultyID).Return(facultyUser(), nil)
	mockRepo.On("GetByID", mock.Anything, studentID).Return(nil, apperrors.ErrUserNotFound)
	mockRepo.On("RemoveAdvisee", mock.Anything, facultyID, studentID).Return(nil)

	resolver := NewAccessResolver(mockRepo)
	res, err := resolver.Resolve(context.Background(), facultyID, studentID)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockRepo.AssertExpectations(t)
}

func TestResolve_AdviseeWithDifferentAdvisor(t *testing.T) {
	mockRepo := new(MockUserRepository)
	student := studentUser()
	other := otherID
	student.Advisor = &other
	mockRepo.On("GetByID", mock.Anything, facultyID).Return(facultyUser(), nil)
	mockRepo.On("GetByID", mock.Anything, studentID).Return(student, nil)

	resolver := NewAccessResolver(mockRepo)
	res, err := resolver.Resolve(context.Background(), facultyID, studentID)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockRepo.AssertExpectations(t)
}

func TestResolve_UnknownCaller(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByID", mock.Anything, otherID).Return(nil, apperrors.ErrUserNotFound)

	resolver := NewAccessResolver(mockRepo)
	res, err := resolver.Resolve(context.Background(), otherID, "")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockRepo.AssertExpectations(t)
}
