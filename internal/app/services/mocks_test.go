package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/calwells/degreeplanner/internal/app/models"
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

// MockPlanRepository is a mock implementation of IPlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) GetByID(ctx context.Context, studentID, planID string) (*models.Plan, error) {
	args := m.Called(ctx, studentID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Plan, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Plan), args.Error(1)
}

func (m *MockPlanRepository) Exists(ctx context.Context, studentID, planID string) (bool, error) {
	args := m.Called(ctx, studentID, planID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlanRepository) Delete(ctx context.Context, studentID, planID string) error {
	args := m.Called(ctx, studentID, planID)
	return args.Error(0)
}

func (m *MockPlanRepository) UpdatePlacements(ctx context.Context, studentID, planID string, placements []models.PlannedCourse) error {
	args := m.Called(ctx, studentID, planID, placements)
	return args.Error(0)
}

func (m *MockPlanRepository) RemovePlacement(ctx context.Context, studentID, planID, courseID string) error {
	args := m.Called(ctx, studentID, planID, courseID)
	return args.Error(0)
}

func (m *MockPlanRepository) UpdateStudentNotes(ctx context.Context, studentID, planID, notes string) error {
	args := m.Called(ctx, studentID, planID, notes)
	return args.Error(0)
}

func (m *MockPlanRepository) UpdateAdvisorNotes(ctx context.Context, studentID, planID, notes string) error {
	args := m.Called(ctx, studentID, planID, notes)
	return args.Error(0)
}

func (m *MockPlanRepository) UpdateMetadata(ctx context.Context, studentID, planID, name string, accomplishmentIDs []string) error {
	args := m.Called(ctx, studentID, planID, name, accomplishmentIDs)
	return args.Error(0)
}

func (m *MockPlanRepository) UpdateYearCount(ctx context.Context, studentID, planID string, yearCount int) error {
	args := m.Called(ctx, studentID, planID, yearCount)
	return args.Error(0)
}

// MockCourseRepository is a mock implementation of ICourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) DistinctYearsOffered(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockCourseRepository) ListGenEdIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCourseRepository) ListByCatalogYear(ctx context.Context, year int) ([]*models.Course, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Course), args.Error(1)
}

func (m *MockCourseRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockAccomplishmentRepository is a mock implementation of IAccomplishmentRepository.
type MockAccomplishmentRepository struct {
	mock.Mock
}

func (m *MockAccomplishmentRepository) Create(ctx context.Context, accomplishment *models.Accomplishment) error {
	args := m.Called(ctx, accomplishment)
	return args.Error(0)
}

func (m *MockAccomplishmentRepository) ListSummariesByIDs(ctx context.Context, ids []string) ([]*models.Accomplishment, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Accomplishment), args.Error(1)
}

func (m *MockAccomplishmentRepository) ListRequirementsByIDs(ctx context.Context, ids []string) ([]models.RequiredCourse, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RequiredCourse), args.Error(1)
}

func (m *MockAccomplishmentRepository) ListByCatalogYear(ctx context.Context, year int) ([]*models.Accomplishment, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Accomplishment), args.Error(1)
}

func (m *MockAccomplishmentRepository) CountByIDs(ctx context.Context, ids []string) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockAccomplishmentRepository) FindMinorByName(ctx context.Context, name string, year int) (*models.Accomplishment, error) {
	args := m.Called(ctx, name, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Accomplishment), args.Error(1)
}
