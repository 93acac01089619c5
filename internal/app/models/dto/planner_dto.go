package dto

import (
	"github.com/calwells/degreeplanner/internal/app/models"
)

// DataResponse is the full planner view served to the client. Plan,
// Requirements and Catalog are present together when the subject has a valid
// active plan, and absent together otherwise.
type DataResponse struct {
	LoggedInID        string                 `json:"loggedInId"`
	LoggedInName      string                 `json:"loggedInName"`
	StudentID         string                 `json:"studentId"`
	StudentName       string                 `json:"studentName"`
	CurrentTerm       models.TermSeason      `json:"currentTerm"`
	CurrentYear       int                    `json:"currentYear"`
	AvailableCatalogs []int                  `json:"availableCatalogs"`
	Plans             map[string]PlanSummary `json:"plans"`
	Plan              *PlanDetail            `json:"plan,omitempty"`
	Requirements      *Requirements          `json:"requirements,omitempty"`
	Catalog           *CatalogSlice          `json:"catalog,omitempty"`
}

// PlanSummary is the lightweight per-plan entry listed for every plan the
// subject owns. Majors and minors map accomplishment ids to display names.
type PlanSummary struct {
	PlanID      string            `json:"planId"`
	PlanName    string            `json:"planName"`
	Majors      map[string]string `json:"majors"`
	Minors      map[string]string `json:"minors"`
	CatalogYear int               `json:"catalogYear"`
}

// PlanDetail is the full detail of the subject's active plan. AdvisorNotes is
// present only when the actor (not the subject) holds the faculty role.
type PlanDetail struct {
	PlanID       string                          `json:"planId"`
	PlanName     string                          `json:"planName"`
	StudentNotes string                          `json:"studentNotes"`
	AdvisorNotes *string                         `json:"advisorNotes,omitempty"`
	Majors       []string                        `json:"majors"`
	Minors       []string                        `json:"minors"`
	Courses      map[string]models.PlannedCourse `json:"courses"`
	CatalogYear  int                             `json:"catalogYear"`
	YearCount    int                             `json:"yearCount"`
}

// Requirements lists course ids per requirement category for the active
// plan's selected accomplishments. GenEds is global, independent of catalog
// year.
type Requirements struct {
	Core      []string `json:"core"`
	Electives []string `json:"electives"`
	Cognates  []string `json:"cognates"`
	GenEds    []string `json:"genEds"`
}

// CatalogCourse is a course as it appears in the catalog slice, with
// year-offering and gen-ed flags stripped.
type CatalogCourse struct {
	CourseID    string `json:"courseId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
}

// CatalogAccomplishment is an accomplishment as it appears in the catalog
// slice, with the type tag and offered-years stripped.
type CatalogAccomplishment struct {
	AccomplishmentID string                  `json:"accomplishmentId"`
	Name             string                  `json:"name"`
	Requirements     []models.RequiredCourse `json:"requirements"`
}

// CatalogAccomplishments splits the catalog's accomplishments by type.
type CatalogAccomplishments struct {
	Majors map[string]CatalogAccomplishment `json:"majors"`
	Minors map[string]CatalogAccomplishment `json:"minors"`
}

// CatalogSlice is the subset of the catalog offered in the active plan's
// catalog year.
type CatalogSlice struct {
	CatalogYear     int                      `json:"catalogYear"`
	Courses         map[string]CatalogCourse `json:"courses"`
	Accomplishments CatalogAccomplishments   `json:"accomplishments"`
}

// CreatePlanRequest carries the catalog year chosen for a new plan. The field
// is optional; the plan default applies when omitted.
type CreatePlanRequest struct {
	CatalogYear int `json:"catalogYear"`
}

// PlanIDRequest identifies a plan for delete and load operations
type PlanIDRequest struct {
	PlanID string `json:"planId" binding:"required,len=32"`
}

// PlaceCourseRequest places a course into a term of an academic year
type PlaceCourseRequest struct {
	PlanID     string            `json:"planId" binding:"required,len=32"`
	CourseID   string            `json:"courseId" binding:"required"`
	TermSeason models.TermSeason `json:"termSeason" binding:"required"`
	TermYear   int               `json:"termYear" binding:"required"`
}

// RemoveCourseRequest removes a course placement from a plan
type RemoveCourseRequest struct {
	PlanID   string `json:"planId" binding:"required,len=32"`
	CourseID string `json:"courseId" binding:"required"`
}

// UpdateNotesRequest overwrites a notes field on a plan. Notes may be empty:
// clearing notes is a valid update.
type UpdateNotesRequest struct {
	PlanID string `json:"planId" binding:"required,len=32"`
	Notes  string `json:"notes"`
}

// UpdatePlanDataRequest overwrites a plan's name and accomplishment
// selections. Majors and Minors are comma-separated accomplishment id lists;
// a single empty string clears the corresponding selection.
type UpdatePlanDataRequest struct {
	PlanID   string `json:"planId" binding:"required,len=32"`
	PlanName string `json:"planName" binding:"required"`
	Majors   string `json:"majors"`
	Minors   string `json:"minors"`
}

// UpdateYearCountRequest overwrites a plan's year span
type UpdateYearCountRequest struct {
	PlanID    string `json:"planId" binding:"required,len=32"`
	YearCount int    `json:"yearCount" binding:"required"`
}
