package models

// UserRole identifies which side of the advising relationship a user is on.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleFaculty UserRole = "faculty"
)

// TermSeason is one of the three academic terms within a year.
type TermSeason string

const (
	TermSpring TermSeason = "spring"
	TermSummer TermSeason = "summer"
	TermFall   TermSeason = "fall"
)

// IsValidTermSeason reports whether s is a recognized term season.
func IsValidTermSeason(s TermSeason) bool {
	switch s {
	case TermSpring, TermSummer, TermFall:
		return true
	}
	return false
}

// AccomplishmentType distinguishes majors from minors.
type AccomplishmentType string

const (
	AccomplishmentMajor AccomplishmentType = "major"
	AccomplishmentMinor AccomplishmentType = "minor"
)

// RequirementType classifies a required course within an accomplishment.
type RequirementType string

const (
	RequirementCore     RequirementType = "core"
	RequirementElective RequirementType = "elective"
	RequirementCognate  RequirementType = "cognate"
)
