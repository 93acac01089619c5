package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/calwells/degreeplanner/internal/app/models"
	appRepos "github.com/calwells/degreeplanner/internal/app/repositories"
)

// Fixed ids for seeded accomplishments. Inserts conflict-skip on these, so
// reseeding an existing database is a no-op.
const (
	computerScienceMajorID = "a1f4c9d2e8b7465f9c0d3a2b1e6f7a8c"
	mathematicsMajorID     = "b2e5d0c3f9a8576e0d1c4b3a2f7e8b9d"
	bibleMinorID           = "c3f6e1d4a0b9687f1e2d5c4b3a8f9c0e"
)

// CreateDefaultData seeds the catalog with a starter set of courses and
// accomplishments when the catalog is empty. Errors are collected and
// reported together; a partial seed is not rolled back.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	accomplishmentRepo := appRepos.NewAccomplishmentRepository(dbPool)

	count, err := courseRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int("courses", count).Msg("Catalog already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding default catalog data...")
	var finalErr error

	for _, course := range defaultCourses() {
		if err := courseRepo.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("courseId", course.CourseID).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, accomplishment := range defaultAccomplishments() {
		if err := accomplishmentRepo.Create(ctx, accomplishment); err != nil {
			lgr.Error().Err(err).Str("accomplishmentId", accomplishment.AccomplishmentID).Msg("Error seeding accomplishment")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default catalog data seeded")
	}
	return finalErr
}

func defaultCourses() []*appModels.Course {
	allYears := []int{2023, 2024, 2025}

	return []*appModels.Course{
		{CourseID: "CS150", Name: "Introduction to Programming", Description: "Programming fundamentals using a high-level language.", Credits: 4, YearsOffered: allYears},
		{CourseID: "CS250", Name: "Data Structures", Description: "Lists, trees, hash tables and the analysis of algorithms that use them.", Credits: 4, YearsOffered: allYears},
		{CourseID: "CS300", Name: "Computer Organization", Description: "Machine representation of data and programs.", Credits: 3, YearsOffered: allYears},
		{CourseID: "CS350", Name: "Operating Systems", Description: "Processes, scheduling, memory management and file systems.", Credits: 3, YearsOffered: []int{2024, 2025}},
		{CourseID: "CS430", Name: "Database Systems", Description: "Relational model, query languages and transaction processing.", Credits: 3, YearsOffered: []int{2024, 2025}},
		{CourseID: "MA101", Name: "Calculus I", Description: "Limits, derivatives and integrals of functions of one variable.", Credits: 4, YearsOffered: allYears},
		{CourseID: "MA201", Name: "Calculus II", Description: "Techniques of integration, sequences and series.", Credits: 4, YearsOffered: allYears},
		{CourseID: "MA310", Name: "Linear Algebra", Description: "Vector spaces, linear transformations and eigenvalues.", Credits: 3, YearsOffered: allYears},
		{CourseID: "MA330", Name: "Probability and Statistics", Description: "Probability models and statistical inference.", Credits: 3, YearsOffered: []int{2024, 2025}},
		{CourseID: "BIB101", Name: "Old Testament Survey", Description: "Survey of the Old Testament writings.", Credits: 3, YearsOffered: allYears, IsGenEd: true},
		{CourseID: "BIB201", Name: "New Testament Survey", Description: "Survey of the New Testament writings.", Credits: 3, YearsOffered: allYears, IsGenEd: true},
		{CourseID: "BIB310", Name: "Biblical Interpretation", Description: "Principles and practice of exegesis.", Credits: 3, YearsOffered: []int{2024}},
		{CourseID: "EN110", Name: "Composition", Description: "Expository writing and revision.", Credits: 3, YearsOffered: allYears, IsGenEd: true},
		{CourseID: "CM120", Name: "Public Speaking", Description: "Preparation and delivery of speeches.", Credits: 3, YearsOffered: allYears, IsGenEd: true},
		{CourseID: "HI210", Name: "World History", Description: "Global history from antiquity to the modern era.", Credits: 3, YearsOffered: allYears, IsGenEd: true},
	}
}

func defaultAccomplishments() []*appModels.Accomplishment {
	return []*appModels.Accomplishment{
		{
			AccomplishmentID: computerScienceMajorID,
			Name:             "Computer Science",
			Type:             appModels.AccomplishmentMajor,
			YearsOffered:     []int{2023, 2024, 2025},
			Requirements: []appModels.RequiredCourse{
				{RequiredCourseID: "CS150", RequirementType: appModels.RequirementCore},
				{RequiredCourseID: "CS250", RequirementType: appModels.RequirementCore},
				{RequiredCourseID: "CS300", RequirementType: appModels.RequirementCore},
				{RequiredCourseID: "CS350", RequirementType: appModels.RequirementElective},
				{RequiredCourseID: "CS430", RequirementType: appModels.RequirementElective},
				{RequiredCourseID: "MA101", RequirementType: appModels.RequirementCognate},
				{RequiredCourseID: "MA310", RequirementType: appModels.RequirementCognate},
			},
		},
		{
			AccomplishmentID: mathematicsMajorID,
			Name:             "Mathematics",
			Type:             appModels.AccomplishmentMajor,
			YearsOffered:     []int{2023, 2024, 2025},
			Requirements: []appModels.RequiredCourse{
				{RequiredCourseID: "MA101", RequirementType: appModels.RequirementCore},
				{RequiredCourseID: "MA201", RequirementType: appModels.RequirementCore},
				{RequiredCourseID: "MA310", RequirementType: appModels.RequirementCore},
				{RequiredCourseID: "MA330", RequirementType: appModels.RequirementElective},
				{RequiredCourseID: "CS150", RequirementType: appModels.RequirementCognate},
			},
		},
		{
			AccomplishmentID: bibleMinorID,
			Name:             "Bible",
			Type:             appModels.AccomplishmentMinor,
			YearsOffered:     []int{2024},
			Requirements: []appModels.RequiredCourse{
				{RequiredCourseID: "BIB101", RequirementType: appModels.RequirementCore},
				{RequiredCourseID: "BIB201", RequirementType: appModels.RequirementCore},
				{RequiredCourseID: "BIB310", RequirementType: appModels.RequirementElective},
			},
		},
	}
}
