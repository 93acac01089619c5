package models

// RequiredCourse ties a course to an accomplishment under a requirement category.
type RequiredCourse struct {
	RequiredCourseID string          `json:"requiredCourseId"`
	RequirementType  RequirementType `json:"requirementType"`
}

// Accomplishment is a major or minor with its required courses. Like courses,
// accomplishments are read-only reference data keyed by catalog year.
type Accomplishment struct {
	AccomplishmentID string             `json:"accomplishmentId" db:"accomplishment_id"`
	Name             string             `json:"name" db:"name"`
	Type             AccomplishmentType `json:"type" db:"type"`
	YearsOffered     []int              `json:"yearsOffered,omitempty" db:"years_offered"`
	Requirements     []RequiredCourse   `json:"requirements,omitempty" db:"requirements"`
}
