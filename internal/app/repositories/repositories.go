package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	PlanRepository           *PlanRepository
	CourseRepository         *CourseRepository
	AccomplishmentRepository *AccomplishmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		PlanRepository:           NewPlanRepository(db),
		CourseRepository:         NewCourseRepository(db),
		AccomplishmentRepository: NewAccomplishmentRepository(db),
	}
}
