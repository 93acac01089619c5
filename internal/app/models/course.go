package models

// Course represents a catalog course. Course ids are stable natural keys
// (department code plus number), not generated tokens. Courses are reference
// data: this service only reads them.
type Course struct {
	CourseID     string `json:"courseId" db:"course_id"`
	Name         string `json:"name" db:"name"`
	Description  string `json:"description" db:"description"`
	Credits      int    `json:"credits" db:"credits"`
	YearsOffered []int  `json:"yearsOffered,omitempty" db:"years_offered"`
	IsGenEd      bool   `json:"isGenEd,omitempty" db:"is_gen_ed"`
}
