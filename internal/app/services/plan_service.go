package services

import (
	"context"
	"errors"
	"strings"

	"github.com/calwells/degreeplanner/internal/app/auth"
	"github.com/calwells/degreeplanner/internal/app/models"
	"github.com/calwells/degreeplanner/internal/app/repositories"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
	"github.com/calwells/degreeplanner/internal/pkg/identifier"
	"github.com/calwells/degreeplanner/internal/pkg/logger"
	"github.com/calwells/degreeplanner/internal/pkg/validation"
)

// seedMinorName and seedMinorYear identify the minor attached to every newly
// created plan when the catalog contains it. Legacy default; the lookup is
// data-driven, so removing the minor from the catalog disables the seed.
const (
	seedMinorName = "Bible"
	seedMinorYear = 2024
)

// PlanService applies mutations to a subject's plans. Every method assumes
// the caller already passed authorization resolution; methods that depend on
// the actor's role take the full resolution.
type PlanService struct {
	userRepo           repositories.IUserRepository
	planRepo           repositories.IPlanRepository
	accomplishmentRepo repositories.IAccomplishmentRepository
}

// NewPlanService creates a new plan service
func NewPlanService(
	userRepo repositories.IUserRepository,
	planRepo repositories.IPlanRepository,
	accomplishmentRepo repositories.IAccomplishmentRepository,
) *PlanService {
	return &PlanService{
		userRepo:           userRepo,
		planRepo:           planRepo,
		accomplishmentRepo: accomplishmentRepo,
	}
}

// CreatePlan creates a fresh plan for the subject and makes it the active
// plan. A zero catalogYear selects the default catalog.
func (s *PlanService) CreatePlan(ctx context.Context, res *auth.Resolution, catalogYear int) error {
	if catalogYear == 0 {
		catalogYear = models.DefaultCatalogYear
	}

	accomplishments := []string{}
	seed, err := s.accomplishmentRepo.FindMinorByName(ctx, seedMinorName, seedMinorYear)
	switch {
	case err == nil:
		accomplishments = append(accomplishments, seed.AccomplishmentID)
	case !errors.Is(err, apperrors.ErrResourceNotFound):
		return err
	}

	plan := &models.Plan{
		PlanID:          identifier.New(),
		StudentID:       res.Subject.UserID,
		Name:            models.DefaultPlanName,
		CatalogYear:     catalogYear,
		YearCount:       models.DefaultYearCount,
		Courses:         []models.PlannedCourse{},
		Accomplishments: accomplishments,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return err
	}

	logger.Debug().
		Str("userId", res.Subject.UserID).
		Str("planId", plan.PlanID).
		Int("catalogYear", catalogYear).
		Msg("Created plan")

	return s.userRepo.SetActivePlan(ctx, res.Subject.UserID, &plan.PlanID)
}

// DeletePlan removes one of the subject's plans. If the plan was active, the
// active-plan pointer is cleared as well.
func (s *PlanService) DeletePlan(ctx context.Context, res *auth.Resolution, planID string) error {
	if err := s.planRepo.Delete(ctx, res.Subject.UserID, planID); err != nil {
		return err
	}

	if res.Subject.ActivePlanID != nil && *res.Subject.ActivePlanID == planID {
		return s.userRepo.SetActivePlan(ctx, res.Subject.UserID, nil)
	}
	return nil
}

// LoadPlan switches the subject's active plan to the given plan.
func (s *PlanService) LoadPlan(ctx context.Context, res *auth.Resolution, planID string) error {
	exists, err := s.planRepo.Exists(ctx, res.Subject.UserID, planID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrPlanNotFound
	}
	return s.userRepo.SetActivePlan(ctx, res.Subject.UserID, &planID)
}

// PlaceCourse records a course placement on the plan, replacing any existing
// placement for the same course id. The requested term must lie within the
// plan's span: from the catalog year's fall term up to, but not including,
// the fall term yearCount years later.
func (s *PlanService) PlaceCourse(ctx context.Context, res *auth.Resolution, planID, courseID string, season models.TermSeason, termYear int) error {
	if !models.IsValidTermSeason(season) {
		return apperrors.ErrBadRequest
	}
	if termYear <= 2000 || termYear >= 2100 {
		return apperrors.ErrTermOutOfRange
	}

	plan, err := s.planRepo.GetByID(ctx, res.Subject.UserID, planID)
	if err != nil {
		return err
	}

	if !termWithinPlan(plan.CatalogYear, plan.YearCount, season, termYear) {
		return apperrors.ErrTermOutOfRange
	}

	placements := make([]models.PlannedCourse, 0, len(plan.Courses)+1)
	for _, pc := range plan.Courses {
		if pc.PlannedCourse != courseID {
			placements = append(placements, pc)
		}
	}
	placements = append(placements, models.PlannedCourse{
		PlannedCourse: courseID,
		PlannedTerm:   season,
		PlannedYear:   termYear,
	})

	return s.planRepo.UpdatePlacements(ctx, res.Subject.UserID, planID, placements)
}

// termWithinPlan reports whether (season, termYear) falls inside the plan's
// span [catalogYear fall, catalogYear+yearCount fall).
func termWithinPlan(catalogYear, yearCount int, season models.TermSeason, termYear int) bool {
	switch {
	case catalogYear > termYear:
		return false
	case catalogYear == termYear && season != models.TermFall:
		return false
	case catalogYear+yearCount == termYear && season == models.TermFall:
		return false
	case catalogYear+yearCount < termYear:
		return false
	}
	return true
}

// RemoveCourse drops the placement for the given course id. A missing
// placement is not an error.
func (s *PlanService) RemoveCourse(ctx context.Context, res *auth.Resolution, planID, courseID string) error {
	return s.planRepo.RemovePlacement(ctx, res.Subject.UserID, planID, courseID)
}

// UpdateStudentNotes overwrites the plan's student notes.
func (s *PlanService) UpdateStudentNotes(ctx context.Context, res *auth.Resolution, planID, notes string) error {
	return s.planRepo.UpdateStudentNotes(ctx, res.Subject.UserID, planID, notes)
}

// UpdateAdvisorNotes overwrites the plan's advisor notes. Only faculty actors
// may write this field, regardless of how the subject was resolved.
func (s *PlanService) UpdateAdvisorNotes(ctx context.Context, res *auth.Resolution, planID, notes string) error {
	if !res.ActorIsFaculty() {
		return apperrors.ErrUnauthorized
	}
	return s.planRepo.UpdateAdvisorNotes(ctx, res.Subject.UserID, planID, notes)
}

// UpdatePlanData overwrites the plan's name and its full accomplishment
// selection. The submitted majors and minors fully replace the previous
// selection; ids absent from the request are dropped.
func (s *PlanService) UpdatePlanData(ctx context.Context, res *auth.Resolution, planID, planName, majorsCSV, minorsCSV string) error {
	exists, err := s.planRepo.Exists(ctx, res.Subject.UserID, planID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrPlanNotFound
	}

	if !validation.IsValidPlanName(planName) {
		return apperrors.ErrValidationFailed
	}

	ids := append(splitIDList(majorsCSV), splitIDList(minorsCSV)...)

	if len(ids) > 0 {
		count, err := s.accomplishmentRepo.CountByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if count != len(ids) {
			return apperrors.ErrBadRequest
		}
	}

	return s.planRepo.UpdateMetadata(ctx, res.Subject.UserID, planID, planName, ids)
}

// splitIDList splits a comma-separated id list. An empty field is the
// sentinel for "no selections"; any other empty or padded segment is kept
// verbatim so that id resolution rejects the malformed list.
func splitIDList(csv string) []string {
	if csv == "" {
		return []string{}
	}
	return strings.Split(csv, ",")
}

// UpdateYearCount overwrites the plan's year count. Placements left outside
// the shrunk span are not removed here; callers issue remove-course calls for
// those.
func (s *PlanService) UpdateYearCount(ctx context.Context, res *auth.Resolution, planID string, yearCount int) error {
	return s.planRepo.UpdateYearCount(ctx, res.Subject.UserID, planID, yearCount)
}
