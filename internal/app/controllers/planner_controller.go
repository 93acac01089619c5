package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/calwells/degreeplanner/internal/app/auth"
	"github.com/calwells/degreeplanner/internal/app/models/dto"
	"github.com/calwells/degreeplanner/internal/app/services"
	"github.com/calwells/degreeplanner/internal/middleware"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
	"github.com/calwells/degreeplanner/internal/pkg/identifier"
)

// PlannerController handles the plan data view and all plan mutations. Every
// handler resolves (subject, actor) first; faculty callers select the subject
// with the studentId query parameter.
type PlannerController struct {
	accessResolver *auth.AccessResolver
	plannerService *services.PlannerService
	planService    *services.PlanService
	logger         zerolog.Logger
}

// NewPlannerController creates a new PlannerController
func NewPlannerController(
	accessResolver *auth.AccessResolver,
	plannerService *services.PlannerService,
	planService *services.PlanService,
	logger zerolog.Logger,
) *PlannerController {
	return &PlannerController{
		accessResolver: accessResolver,
		plannerService: plannerService,
		planService:    planService,
		logger:         logger,
	}
}

// resolve runs access resolution for the request. On failure it writes the
// error response and returns false.
func (c *PlannerController) resolve(ctx *gin.Context) (*auth.Resolution, bool) {
	callerID := ctx.GetString("userID")
	targetID := ctx.Query("studentId")

	if targetID != "" && !identifier.IsValid(targetID) {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return nil, false
	}

	res, err := c.accessResolver.Resolve(ctx.Request.Context(), callerID, targetID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return res, true
}

// bind parses the JSON body. On failure it writes a 400 and returns false.
func (c *PlannerController) bind(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// GetData serves the full planner view
// @Summary Get planner data
// @Description Returns catalogs, plan summaries and, when an active plan is set, the full plan detail with its requirements and catalog slice.
// @Tags planner
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Subject student id (faculty acting on an advisee)"
// @Success 200 {object} dto.DataResponse "Planner view"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /planner/data [get]
func (c *PlannerController) GetData(ctx *gin.Context) {
	res, ok := c.resolve(ctx)
	if !ok {
		return
	}

	data, err := c.plannerService.GetPlannerData(ctx.Request.Context(), res)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// CreatePlan creates a plan
// @Summary Create a plan
// @Description Creates a plan with default name and year count for the chosen catalog year, and makes it the subject's active plan.
// @Tags planner
// @Accept json
// @Security BearerAuth
// @Param studentId query string false "Subject student id"
// @Param request body dto.CreatePlanRequest false "Catalog year (defaults when omitted)"
// @Success 204 "Plan created"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Router /planner/plan [post]
func (c *PlannerController) CreatePlan(ctx *gin.Context) {
	res, ok := c.resolve(ctx)
	if !ok {
		return
	}

	// Body is optional; an absent or empty body selects the default catalog.
	var req dto.CreatePlanRequest
	_ = ctx.ShouldBindJSON(&req)

	if err := c.planService.CreatePlan(ctx.Request.Context(), res, req.CatalogYear); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeletePlan removes a plan
// @Summary Delete a plan
// @Description Deletes the given plan. If it was the active plan, the active-plan pointer is cleared.
// @Tags planner
// @Accept json
// @Security BearerAuth
// @Param studentId query string false "Subject student id"
// @Param request body dto.PlanIDRequest true "Plan id"
// @Success 204 "Plan deleted"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /planner/plan [delete]
func (c *PlannerController) DeletePlan(ctx *gin.Context) {
	res, ok := c.resolve(ctx)
	if !ok {
		return
	}

	var req dto.PlanIDRequest
	if !c.bind(ctx, &req) {
		return
	}

	if err := c.planService.DeletePlan(ctx.Request.Context(), res, req.PlanID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// LoadPlan switches the active plan
// @Summary Switch active plan
// @Description Points the subject's active-plan pointer at the given plan.
// @Tags planner
// @Accept json
// @Security BearerAuth
// @Param studentId query string false "Subject student id"
// @Param request body dto.PlanIDRequest true "Plan id"
// @Success 204 "Active plan switched"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /planner/loadPlan [post]
func (c *PlannerController) LoadPlan(ctx *gin.Context) {
	res, ok := c.resolve(ctx)
	if !ok {
		return
	}

	var req dto.PlanIDRequest
	if !c.bind(ctx, &req) {
		return
	}

	if err := c.planService.LoadPlan(ctx.Request.Context(), res, req.PlanID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// PlaceCourse places a course into a term
// @Summary Place a course
// @Description Places a course into a term of the plan, replacing any existing placement for the same course.
// @Tags planner
// @Accept json
// @Security BearerAuth
// @Param studentId query string false "Subject student id"
// @Param request body dto.PlaceCourseRequest true "Placement"
// @Success 204 "Course placed"
// @Failure 400 {object} dto.ErrorResponse "Term outside plan range"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /planner/plannedCourse [post]
func (c *PlannerController) PlaceCourse(ctx *gin.Context) {
	res, ok := c.resolve(ctx)
	if !ok {
		return
	}

	var req dto.PlaceCourseRequest
	if !c.bind(ctx, &req) {
		return
	}

	err := c.planService.PlaceCourse(ctx.Request.Context(), res, req.PlanID, req.CourseID, req.TermSeason, req.TermYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RemoveCourse removes a course placement
// @Summary Remove a course placement
// @Description Removes the placement for the given course id. Removing a course that is not placed succeeds.
// @Tags planner
// @Accept json
// @Security BearerAuth
// @Param studentId query string false "Subject student id"
// @Param request body dto.RemoveCourseRequest true "Course to remove"
// @Success 204 "Placement removed"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /planner/plannedCourse [delete]
func (c *PlannerController) RemoveCourse(ctx *gin.Context) {
	res, ok := c.resolve(ctx)
	if !ok {
		return
	}

	var req dto.RemoveCourseRequest
	if !c.bind(ctx, &req) {
		return
	}

	if err := c.planService.RemoveCourse(ctx.Request.Context(), res, req.PlanID, req.CourseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpdateStudentNotes overwrites student notes
// @Summary Update student notes
// @Tags planner
// @Accept json
// @Security BearerAuth
// @Param studentId query string false "Subject student id"
// @Param request body dto.UpdateNotesRequest true "Notes"
// @Success 204 "Notes updated"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /planner/studentNotes [patch]
func (c *PlannerController) UpdateStudentNotes(ctx *gin.Context) {
	res, ok := c.resolve(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNotesRequest
	if !c.bind(ctx, &req) {
		return
	}

	if err := c.planService.UpdateStudentNotes(ctx.Request.Context(), res, req.PlanID, req.Notes); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpdateAdvisorNotes overwrites advisor notes
// @Summary Update advisor notes
// @Description Overwrites the plan's advisor notes. Only faculty callers may write this field.
// @Tags planner
// @Accept json
// @Security BearerAuth
// @Param studentId query string false "Subject student id"
// @Param request body dto.UpdateNotesRequest true "Notes"
// @Success 204 "Notes updated"
// @Failure 401 {object} dto.ErrorResponse "Caller is not faculty"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /planner/advisorNotes [patch]
func (c *PlannerController) UpdateAdvisorNotes(ctx *gin.Context) {
	res, ok := c.resolve(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNotesRequest
	if !c.bind(ctx, &req) {
		return
	}

	if err := c.planService.UpdateAdvisorNotes(ctx.Request.Context(), res, req.PlanID, req.Notes); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpdatePlanData overwrites plan name and accomplishment selection
// @Summary Update plan metadata
// @Description Overwrites the plan's name and its full major/minor selection. Majors and minors are comma-separated accomplishment id lists; an empty list clears that selection.
// @Tags planner
// @Accept json
// @Security BearerAuth
// @Param studentId query string false "Subject student id"
// @Param request body dto.UpdatePlanDataRequest true "Plan metadata"
// @Success 204 "Metadata updated"
// @Failure 400 {object} dto.ErrorResponse "Unresolvable accomplishment ids or invalid name"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /planner/planData [patch]
func (c *PlannerController) UpdatePlanData(ctx *gin.Context) {
	res, ok := c.resolve(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePlanDataRequest
	if !c.bind(ctx, &req) {
		return
	}

	err := c.planService.UpdatePlanData(ctx.Request.Context(), res, req.PlanID, req.PlanName, req.Majors, req.Minors)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpdateYearCount overwrites the plan's year count
// @Summary Update year count
// @Description Overwrites the plan's year count. Placements outside the shrunk span stay; the client removes them individually.
// @Tags planner
// @Accept json
// @Security BearerAuth
// @Param studentId query string false "Subject student id"
// @Param request body dto.UpdateYearCountRequest true "Year count"
// @Success 204 "Year count updated"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /planner/yearCount [patch]
func (c *PlannerController) UpdateYearCount(ctx *gin.Context) {
	res, ok := c.resolve(ctx)
	if !ok {
		return
	}

	var req dto.UpdateYearCountRequest
	if !c.bind(ctx, &req) {
		return
	}

	if err := c.planService.UpdateYearCount(ctx.Request.Context(), res, req.PlanID, req.YearCount); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
