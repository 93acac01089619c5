package models

// PlannedCourse is a single placement of a course into a term of an academic
// year. A plan holds at most one placement per course id.
type PlannedCourse struct {
	PlannedCourse string     `json:"plannedCourse"`
	PlannedTerm   TermSeason `json:"plannedTerm"`
	PlannedYear   int        `json:"plannedYear"`
}

// Plan is a student's multi-year course plan. The catalog year fixes which
// course and accomplishment definitions apply; YearCount is the span of
// academic years the plan covers.
type Plan struct {
	PlanID          string          `json:"planId" db:"plan_id"`
	StudentID       string          `json:"studentId" db:"student_id"`
	Name            string          `json:"name" db:"name"`
	Courses         []PlannedCourse `json:"courses" db:"courses"`
	Accomplishments []string        `json:"accomplishments" db:"accomplishments"`
	CatalogYear     int             `json:"catalogYear" db:"catalog_year"`
	YearCount       int             `json:"yearCount" db:"year_count"`
	StudentNotes    string          `json:"studentNotes" db:"student_notes"`
	AdvisorNotes    string          `json:"advisorNotes" db:"advisor_notes"`
}

// Default values applied when a plan is created.
const (
	DefaultPlanName    = "New Plan"
	DefaultCatalogYear = 2024
	DefaultYearCount   = 4
)
