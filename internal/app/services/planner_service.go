package services

import (
	"context"
	"fmt"

	"github.com/calwells/degreeplanner/internal/app/auth"
	"github.com/calwells/degreeplanner/internal/app/models"
	"github.com/calwells/degreeplanner/internal/app/models/dto"
	"github.com/calwells/degreeplanner/internal/app/repositories"
	"github.com/calwells/degreeplanner/internal/pkg/logger"
)

// PlannerService assembles the full planner view served by /planner/data.
// It is read-only except for one self-healing write: a dangling active-plan
// pointer is cleared when detected.
type PlannerService struct {
	userRepo           repositories.IUserRepository
	planRepo           repositories.IPlanRepository
	courseRepo         repositories.ICourseRepository
	accomplishmentRepo repositories.IAccomplishmentRepository
}

// NewPlannerService creates a new planner service
func NewPlannerService(
	userRepo repositories.IUserRepository,
	planRepo repositories.IPlanRepository,
	courseRepo repositories.ICourseRepository,
	accomplishmentRepo repositories.IAccomplishmentRepository,
) *PlannerService {
	return &PlannerService{
		userRepo:           userRepo,
		planRepo:           planRepo,
		courseRepo:         courseRepo,
		accomplishmentRepo: accomplishmentRepo,
	}
}

// GetPlannerData builds the full view for the resolved subject. Plan summaries
// are always listed; full plan detail, requirements and the catalog slice are
// attached together when the subject has a valid active plan, and omitted
// together otherwise.
func (s *PlannerService) GetPlannerData(ctx context.Context, res *auth.Resolution) (*dto.DataResponse, error) {
	subject := res.Subject

	years, err := s.courseRepo.DistinctYearsOffered(ctx)
	if err != nil {
		return nil, err
	}
	if years == nil {
		years = []int{}
	}

	plans, err := s.planRepo.ListByStudent(ctx, subject.UserID)
	if err != nil {
		return nil, err
	}

	data := &dto.DataResponse{
		LoggedInID:        res.Actor.UserID,
		LoggedInName:      res.Actor.Name,
		StudentID:         subject.UserID,
		StudentName:       subject.Name,
		CurrentTerm:       subject.CurrentTerm,
		CurrentYear:       subject.CurrentYear,
		AvailableCatalogs: years,
		Plans:             make(map[string]dto.PlanSummary, len(plans)),
	}

	for _, plan := range plans {
		summary, err := s.buildPlanSummary(ctx, plan)
		if err != nil {
			return nil, err
		}
		data.Plans[plan.PlanID] = summary
	}

	if subject.ActivePlanID == nil {
		return data, nil
	}

	activePlan := findPlan(plans, *subject.ActivePlanID)
	if activePlan == nil {
		// The pointed-to plan is gone. Clear the pointer and serve the view
		// without full detail; this is a self-heal, not an error.
		if err := s.userRepo.SetActivePlan(ctx, subject.UserID, nil); err != nil {
			return nil, fmt.Errorf("error clearing stale active plan: %w", err)
		}
		logger.Info().
			Str("userId", subject.UserID).
			Str("planId", *subject.ActivePlanID).
			Msg("Cleared dangling active-plan pointer")
		return data, nil
	}

	detail, err := s.buildPlanDetail(ctx, activePlan, res.ActorIsFaculty())
	if err != nil {
		return nil, err
	}
	data.Plan = detail

	requirements, err := s.buildRequirements(ctx, activePlan)
	if err != nil {
		return nil, err
	}
	data.Requirements = requirements

	catalog, err := s.buildCatalogSlice(ctx, activePlan.CatalogYear)
	if err != nil {
		return nil, err
	}
	data.Catalog = catalog

	return data, nil
}

func findPlan(plans []*models.Plan, planID string) *models.Plan {
	for _, plan := range plans {
		if plan.PlanID == planID {
			return plan
		}
	}
	return nil
}

// buildPlanSummary resolves a plan's accomplishment ids to display names and
// splits them into majors and minors.
func (s *PlannerService) buildPlanSummary(ctx context.Context, plan *models.Plan) (dto.PlanSummary, error) {
	accomplishments, err := s.accomplishmentRepo.ListSummariesByIDs(ctx, plan.Accomplishments)
	if err != nil {
		return dto.PlanSummary{}, err
	}

	summary := dto.PlanSummary{
		PlanID:      plan.PlanID,
		PlanName:    plan.Name,
		Majors:      map[string]string{},
		Minors:      map[string]string{},
		CatalogYear: plan.CatalogYear,
	}

	for _, a := range accomplishments {
		switch a.Type {
		case models.AccomplishmentMajor:
			summary.Majors[a.AccomplishmentID] = a.Name
		case models.AccomplishmentMinor:
			summary.Minors[a.AccomplishmentID] = a.Name
		}
	}

	return summary, nil
}

// buildPlanDetail assembles the active plan's full detail. Advisor notes are
// included only for faculty actors.
func (s *PlannerService) buildPlanDetail(ctx context.Context, plan *models.Plan, actorIsFaculty bool) (*dto.PlanDetail, error) {
	accomplishments, err := s.accomplishmentRepo.ListSummariesByIDs(ctx, plan.Accomplishments)
	if err != nil {
		return nil, err
	}

	detail := &dto.PlanDetail{
		PlanID:       plan.PlanID,
		PlanName:     plan.Name,
		StudentNotes: plan.StudentNotes,
		Majors:       []string{},
		Minors:       []string{},
		Courses:      make(map[string]models.PlannedCourse, len(plan.Courses)),
		CatalogYear:  plan.CatalogYear,
		YearCount:    plan.YearCount,
	}

	if actorIsFaculty {
		advisorNotes := plan.AdvisorNotes
		detail.AdvisorNotes = &advisorNotes
	}

	for _, a := range accomplishments {
		switch a.Type {
		case models.AccomplishmentMajor:
			detail.Majors = append(detail.Majors, a.Name)
		case models.AccomplishmentMinor:
			detail.Minors = append(detail.Minors, a.Name)
		}
	}

	for _, pc := range plan.Courses {
		detail.Courses[pc.PlannedCourse] = pc
	}

	return detail, nil
}

// buildRequirements computes the requirement lists for the plan's selected
// accomplishments. Core, elective and cognate lists are the deduplicated
// union across accomplishments; gen-eds are every gen-ed flagged course,
// regardless of catalog year.
func (s *PlannerService) buildRequirements(ctx context.Context, plan *models.Plan) (*dto.Requirements, error) {
	genEds, err := s.courseRepo.ListGenEdIDs(ctx)
	if err != nil {
		return nil, err
	}
	if genEds == nil {
		genEds = []string{}
	}

	requirements := &dto.Requirements{
		Core:      []string{},
		Electives: []string{},
		Cognates:  []string{},
		GenEds:    genEds,
	}

	entries, err := s.accomplishmentRepo.ListRequirementsByIDs(ctx, plan.Accomplishments)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return requirements, nil
	}

	seenCore := map[string]bool{}
	seenElective := map[string]bool{}
	seenCognate := map[string]bool{}

	for _, entry := range entries {
		switch entry.RequirementType {
		case models.RequirementCore:
			if !seenCore[entry.RequiredCourseID] {
				seenCore[entry.RequiredCourseID] = true
				requirements.Core = append(requirements.Core, entry.RequiredCourseID)
			}
		case models.RequirementElective:
			if !seenElective[entry.RequiredCourseID] {
				seenElective[entry.RequiredCourseID] = true
				requirements.Electives = append(requirements.Electives, entry.RequiredCourseID)
			}
		case models.RequirementCognate:
			if !seenCognate[entry.RequiredCourseID] {
				seenCognate[entry.RequiredCourseID] = true
				requirements.Cognates = append(requirements.Cognates, entry.RequiredCourseID)
			}
		}
	}

	return requirements, nil
}

// buildCatalogSlice collects the courses and accomplishments offered in the
// given catalog year, shaped for the client with internal fields stripped.
func (s *PlannerService) buildCatalogSlice(ctx context.Context, catalogYear int) (*dto.CatalogSlice, error) {
	courses, err := s.courseRepo.ListByCatalogYear(ctx, catalogYear)
	if err != nil {
		return nil, err
	}

	accomplishments, err := s.accomplishmentRepo.ListByCatalogYear(ctx, catalogYear)
	if err != nil {
		return nil, err
	}

	slice := &dto.CatalogSlice{
		CatalogYear: catalogYear,
		Courses:     make(map[string]dto.CatalogCourse, len(courses)),
		Accomplishments: dto.CatalogAccomplishments{
			Majors: map[string]dto.CatalogAccomplishment{},
			Minors: map[string]dto.CatalogAccomplishment{},
		},
	}

	for _, course := range courses {
		slice.Courses[course.CourseID] = dto.CatalogCourse{
			CourseID:    course.CourseID,
			Name:        course.Name,
			Description: course.Description,
			Credits:     course.Credits,
		}
	}

	for _, a := range accomplishments {
		entry := dto.CatalogAccomplishment{
			AccomplishmentID: a.AccomplishmentID,
			Name:             a.Name,
			Requirements:     a.Requirements,
		}
		if entry.Requirements == nil {
			entry.Requirements = []models.RequiredCourse{}
		}

		switch a.Type {
		case models.AccomplishmentMajor:
			slice.Accomplishments.Majors[a.AccomplishmentID] = entry
		case models.AccomplishmentMinor:
			slice.Accomplishments.Minors[a.AccomplishmentID] = entry
		}
	}

	return slice, nil
}
