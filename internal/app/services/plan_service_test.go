package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/calwells/degreeplanner/internal/app/auth"
	"github.com/calwells/degreeplanner/internal/app/models"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
)

func newPlanService() (*PlanService, *MockUserRepository, *MockPlanRepository, *MockAccomplishmentRepository) {
	userRepo := new(MockUserRepository)
	planRepo := new(MockPlanRepository)
	accRepo := new(MockAccomplishmentRepository)
	return NewPlanService(userRepo, planRepo, accRepo), userRepo, planRepo, accRepo
}

func TestCreatePlan_SeedsDefaultMinorAndActivates(t *testing.T) {
	service, userRepo, planRepo, accRepo := newPlanService()

	accRepo.On("FindMinorByName", mock.Anything, "Bible", 2024).Return(&models.Accomplishment{
		AccomplishmentID: bibleMinorID,
		Name:             "Bible",
		Type:             models.AccomplishmentMinor,
	}, nil)

	var created *models.Plan
	planRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Plan")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Plan)
	}).Return(nil)
	userRepo.On("SetActivePlan", mock.Anything, testStudentID, mock.AnythingOfType("*string")).Return(nil)

	err := service.CreatePlan(context.Background(), selfResolution(testStudent(nil)), 2025)

	assert.NoError(t, err)
	assert.Equal(t, models.DefaultPlanName, created.Name)
	assert.Equal(t, 2025, created.CatalogYear)
	assert.Equal(t, models.DefaultYearCount, created.YearCount)
	assert.Empty(t, created.Courses)
	assert.Equal(t, []string{bibleMinorID}, created.Accomplishments)
	assert.Len(t, created.PlanID, 32)
	userRepo.AssertCalled(t, "SetActivePlan", mock.Anything, testStudentID, &created.PlanID)
}

func TestCreatePlan_NoSeedWhenMinorMissing(t *testing.T) {
	service, userRepo, planRepo, accRepo := newPlanService()

	accRepo.On("FindMinorByName", mock.Anything, "Bible", 2024).Return(nil, apperrors.ErrResourceNotFound)

	var created *models.Plan
	planRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Plan")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Plan)
	}).Return(nil)
	userRepo.On("SetActivePlan", mock.Anything, testStudentID, mock.AnythingOfType("*string")).Return(nil)

	err := service.CreatePlan(context.Background(), selfResolution(testStudent(nil)), 0)

	assert.NoError(t, err)
	assert.Empty(t, created.Accomplishments)
	assert.Equal(t, models.DefaultCatalogYear, created.CatalogYear)
}

func TestDeletePlan_ClearsActivePointer(t *testing.T) {
	service, userRepo, planRepo, _ := newPlanService()

	planRepo.On("Delete", mock.Anything, testStudentID, testPlanID).Return(nil)
	userRepo.On("SetActivePlan", mock.Anything, testStudentID, (*string)(nil)).Return(nil)

	activeID := testPlanID
	err := service.DeletePlan(context.Background(), selfResolution(testStudent(&activeID)), testPlanID)

	assert.NoError(t, err)
	userRepo.AssertCalled(t, "SetActivePlan", mock.Anything, testStudentID, (*string)(nil))
}

func TestDeletePlan_NonActiveLeavesPointer(t *testing.T) {
	service, userRepo, planRepo, _ := newPlanService()

	otherPlanID := "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"
	planRepo.On("Delete", mock.Anything, testStudentID, otherPlanID).Return(nil)

	activeID := testPlanID
	err := service.DeletePlan(context.Background(), selfResolution(testStudent(&activeID)), otherPlanID)

	assert.NoError(t, err)
	userRepo.AssertNotCalled(t, "SetActivePlan", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoadPlan(t *testing.T) {
	t.Run("existing plan becomes active", func(t *testing.T) {
		service, userRepo, planRepo, _ := newPlanService()
		planRepo.On("Exists", mock.Anything, testStudentID, testPlanID).Return(true, nil)
		userRepo.On("SetActivePlan", mock.Anything, testStudentID, mock.AnythingOfType("*string")).Return(nil)

		err := service.LoadPlan(context.Background(), selfResolution(testStudent(nil)), testPlanID)
		assert.NoError(t, err)
	})

	t.Run("unknown plan is not found", func(t *testing.T) {
		service, userRepo, planRepo, _ := newPlanService()
		planRepo.On("Exists", mock.Anything, testStudentID, testPlanID).Return(false, nil)

		err := service.LoadPlan(context.Background(), selfResolution(testStudent(nil)), testPlanID)
		assert.ErrorIs(t, err, apperrors.ErrPlanNotFound)
		userRepo.AssertNotCalled(t, "SetActivePlan", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPlaceCourse_TermBounds(t *testing.T) {
	// Plan spans fall 2024 through (exclusive) fall 2028.
	tests := []struct {
		name     string
		season   models.TermSeason
		termYear int
		wantErr  bool
	}{
		{"first fall accepted", models.TermFall, 2024, false},
		{"fall before catalog year rejected", models.TermFall, 2023, true},
		{"spring of catalog year rejected", models.TermSpring, 2024, true},
		{"fall at end of span rejected", models.TermFall, 2028, true},
		{"spring of final year accepted", models.TermSpring, 2027, false},
		{"spring after final fall accepted", models.TermSpring, 2028, false},
		{"year past span rejected", models.TermFall, 2029, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, planRepo, _ := newPlanService()
			planRepo.On("GetByID", mock.Anything, testStudentID, testPlanID).Return(testPlan(), nil)
			if !tt.wantErr {
				planRepo.On("UpdatePlacements", mock.Anything, testStudentID, testPlanID, mock.Anything).Return(nil)
			}

			err := service.PlaceCourse(context.Background(), selfResolution(testStudent(nil)), testPlanID, "CS250", tt.season, tt.termYear)

			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrTermOutOfRange)
				planRepo.AssertNotCalled(t, "UpdatePlacements", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlaceCourse_InvalidSeason(t *testing.T) {
	service, _, planRepo, _ := newPlanService()

	err := service.PlaceCourse(context.Background(), selfResolution(testStudent(nil)), testPlanID, "CS250", "winter", 2025)

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	planRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceCourse_ImplausibleYear(t *testing.T) {
	service, _, planRepo, _ := newPlanService()

	err := service.PlaceCourse(context.Background(), selfResolution(testStudent(nil)), testPlanID, "CS250", models.TermFall, 1999)

	assert.ErrorIs(t, err, apperrors.ErrTermOutOfRange)
	planRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceCourse_ReplacesExistingPlacement(t *testing.T) {
	service, _, planRepo, _ := newPlanService()

	// CS150 is already placed in fall 2024.
	planRepo.On("GetByID", mock.Anything, testStudentID, testPlanID).Return(testPlan(), nil)

	var placements []models.PlannedCourse
	planRepo.On("UpdatePlacements", mock.Anything, testStudentID, testPlanID, mock.Anything).Run(func(args mock.Arguments) {
		placements = args.Get(3).([]models.PlannedCourse)
	}).Return(nil)

	err := service.PlaceCourse(context.Background(), selfResolution(testStudent(nil)), testPlanID, "CS150", models.TermSpring, 2025)

	assert.NoError(t, err)
	assert.Len(t, placements, 1)
	assert.Equal(t, models.TermSpring, placements[0].PlannedTerm)
	assert.Equal(t, 2025, placements[0].PlannedYear)
}

func TestRemoveCourse(t *testing.T) {
	service, _, planRepo, _ := newPlanService()

	planRepo.On("RemovePlacement", mock.Anything, testStudentID, testPlanID, "CS150").Return(nil)

	err := service.RemoveCourse(context.Background(), selfResolution(testStudent(nil)), testPlanID, "CS150")

	assert.NoError(t, err)
	planRepo.AssertExpectations(t)
}

func TestUpdateAdvisorNotes_RejectsNonFaculty(t *testing.T) {
	service, _, planRepo, _ := newPlanService()

	err := service.UpdateAdvisorNotes(context.Background(), selfResolution(testStudent(nil)), testPlanID, "note")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	planRepo.AssertNotCalled(t, "UpdateAdvisorNotes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAdvisorNotes_FacultyWrites(t *testing.T) {
	service, _, planRepo, _ := newPlanService()

	planRepo.On("UpdateAdvisorNotes", mock.Anything, testStudentID, testPlanID, "note").Return(nil)

	res := &auth.Resolution{Subject: testStudent(nil), Actor: testFaculty()}
	err := service.UpdateAdvisorNotes(context.Background(), res, testPlanID, "note")

	assert.NoError(t, err)
	planRepo.AssertExpectations(t)
}

func TestUpdatePlanData_FullReplace(t *testing.T) {
	service, _, planRepo, accRepo := newPlanService()

	ids := []string{csMajorID, bibleMinorID}
	planRepo.On("Exists", mock.Anything, testStudentID, testPlanID).Return(true, nil)
	accRepo.On("CountByIDs", mock.Anything, ids).Return(2, nil)
	planRepo.On("UpdateMetadata", mock.Anything, testStudentID, testPlanID, "Senior Plan", ids).Return(nil)

	err := service.UpdatePlanData(context.Background(), selfResolution(testStudent(nil)), testPlanID, "Senior Plan", csMajorID, bibleMinorID)

	assert.NoError(t, err)
	planRepo.AssertExpectations(t)
}

func TestUpdatePlanData_EmptyMajorsSentinel(t *testing.T) {
	service, _, planRepo, accRepo := newPlanService()

	// majors="" clears all major selections while minors are kept as sent.
	planRepo.On("Exists", mock.Anything, testStudentID, testPlanID).Return(true, nil)
	accRepo.On("CountByIDs", mock.Anything, []string{bibleMinorID}).Return(1, nil)
	planRepo.On("UpdateMetadata", mock.Anything, testStudentID, testPlanID, "Minor Only", []string{bibleMinorID}).Return(nil)

	err := service.UpdatePlanData(context.Background(), selfResolution(testStudent(nil)), testPlanID, "Minor Only", "", bibleMinorID)

	assert.NoError(t, err)
	planRepo.AssertExpectations(t)
}

func TestUpdatePlanData_ClearsAllSelections(t *testing.T) {
	service, _, planRepo, accRepo := newPlanService()

	planRepo.On("Exists", mock.Anything, testStudentID, testPlanID).Return(true, nil)
	planRepo.On("UpdateMetadata", mock.Anything, testStudentID, testPlanID, "Bare Plan", []string{}).Return(nil)

	err := service.UpdatePlanData(context.Background(), selfResolution(testStudent(nil)), testPlanID, "Bare Plan", "", "")

	assert.NoError(t, err)
	accRepo.AssertNotCalled(t, "CountByIDs", mock.Anything, mock.Anything)
	planRepo.AssertExpectations(t)
}

func TestUpdatePlanData_UnresolvableIDs(t *testing.T) {
	service, _, planRepo, accRepo := newPlanService()

	ids := []string{csMajorID, "0000000000000000000000000000dead"}
	planRepo.On("Exists", mock.Anything, testStudentID, testPlanID).Return(true, nil)
	accRepo.On("CountByIDs", mock.Anything, ids).Return(1, nil)

	err := service.UpdatePlanData(context.Background(), selfResolution(testStudent(nil)), testPlanID, "Senior Plan", csMajorID+","+"0000000000000000000000000000dead", "")

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	planRepo.AssertNotCalled(t, "UpdateMetadata", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePlanData_MalformedIDList(t *testing.T) {
	service, _, planRepo, accRepo := newPlanService()

	// An interior empty segment is not the no-selections sentinel; it is an
	// id that can never resolve, so the count check must reject the list.
	ids := []string{csMajorID, "", mathMajorID}
	planRepo.On("Exists", mock.Anything, testStudentID, testPlanID).Return(true, nil)
	accRepo.On("CountByIDs", mock.Anything, ids).Return(2, nil)

	err := service.UpdatePlanData(context.Background(), selfResolution(testStudent(nil)), testPlanID, "Senior Plan", csMajorID+",,"+mathMajorID, "")

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	planRepo.AssertNotCalled(t, "UpdateMetadata", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePlanData_PaddedIDsNotTrimmed(t *testing.T) {
	service, _, planRepo, accRepo := newPlanService()

	// Ids are opaque tokens; a padded segment is passed through verbatim and
	// fails resolution rather than being silently cleaned up.
	ids := []string{" " + csMajorID, mathMajorID}
	planRepo.On("Exists", mock.Anything, testStudentID, testPlanID).Return(true, nil)
	accRepo.On("CountByIDs", mock.Anything, ids).Return(1, nil)

	err := service.UpdatePlanData(context.Background(), selfResolution(testStudent(nil)), testPlanID, "Senior Plan", " "+csMajorID+","+mathMajorID, "")

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	planRepo.AssertNotCalled(t, "UpdateMetadata", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePlanData_MissingPlan(t *testing.T) {
	service, _, planRepo, accRepo := newPlanService()

	planRepo.On("Exists", mock.Anything, testStudentID, testPlanID).Return(false, nil)

	err := service.UpdatePlanData(context.Background(), selfResolution(testStudent(nil)), testPlanID, "Senior Plan", "not-an-id", "")

	assert.ErrorIs(t, err, apperrors.ErrPlanNotFound)
	accRepo.AssertNotCalled(t, "CountByIDs", mock.Anything, mock.Anything)
	planRepo.AssertNotCalled(t, "UpdateMetadata", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePlanData_InvalidName(t *testing.T) {
	service, _, planRepo, accRepo := newPlanService()

	planRepo.On("Exists", mock.Anything, testStudentID, testPlanID).Return(true, nil)

	err := service.UpdatePlanData(context.Background(), selfResolution(testStudent(nil)), testPlanID, "ab", csMajorID, "")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	accRepo.AssertNotCalled(t, "CountByIDs", mock.Anything, mock.Anything)
	planRepo.AssertNotCalled(t, "UpdateMetadata", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateYearCount(t *testing.T) {
	service, _, planRepo, _ := newPlanService()

	planRepo.On("UpdateYearCount", mock.Anything, testStudentID, testPlanID, 5).Return(nil)

	err := service.UpdateYearCount(context.Background(), selfResolution(testStudent(nil)), testPlanID, 5)

	assert.NoError(t, err)
	planRepo.AssertExpectations(t)
}

func TestUpdateStudentNotes(t *testing.T) {
	service, _, planRepo, _ := newPlanService()

	planRepo.On("UpdateStudentNotes", mock.Anything, testStudentID, testPlanID, "pick MA330 next spring").Return(nil)

	err := service.UpdateStudentNotes(context.Background(), selfResolution(testStudent(nil)), testPlanID, "pick MA330 next spring")

	assert.NoError(t, err)
	planRepo.AssertExpectations(t)
}
