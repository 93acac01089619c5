package models

// User defines the user model based on the 'users' table.
// Advisor is set on students that have been assigned a faculty advisor;
// Advisees is populated on faculty accounts only.
type User struct {
	UserID       string     `json:"userId" db:"user_id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         UserRole   `json:"role" db:"role"`
	ActivePlanID *string    `json:"activePlanId,omitempty" db:"active_plan_id"`
	CurrentTerm  TermSeason `json:"currentTerm" db:"current_term"`
	CurrentYear  int        `json:"currentYear" db:"current_year"`
	Advisor      *string    `json:"advisor,omitempty" db:"advisor_id"`
	Advisees     []string   `json:"advisees,omitempty" db:"advisees"`
}

// HasAdvisee reports whether the faculty user's advisee list contains studentID.
func (u *User) HasAdvisee(studentID string) bool {
	for _, id := range u.Advisees {
		if id == studentID {
			return true
		}
	}
	return false
}
