package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Display name pattern: first and last name, two or more word characters each
	NamePattern = `^\w{2,}\s\w{2,}$`

	// Password length bounds
	PasswordMinLength = 8
	PasswordMaxLength = 32

	// Plan name length bounds
	PlanNameMinLength = 3
	PlanNameMaxLength = 32
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Name  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Name:  regexp.MustCompile(NamePattern),
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidName reports whether s is a "First Last" display name.
func IsValidName(s string) bool {
	return CompiledPatterns.Name.MatchString(s)
}

// IsValidPassword reports whether the password length is within bounds.
func IsValidPassword(s string) bool {
	return len(s) >= PasswordMinLength && len(s) <= PasswordMaxLength
}

// IsValidPlanName reports whether the plan name length is within bounds.
func IsValidPlanName(s string) bool {
	return len(s) >= PlanNameMinLength && len(s) <= PlanNameMaxLength
}
