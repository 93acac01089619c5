package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/calwells/degreeplanner/internal/app/controllers"
	"github.com/calwells/degreeplanner/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	plannerController *controllers.PlannerController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public account routes ---
	user := router.Group("/user")
	{
		user.POST("/register", userController.Register)
		user.POST("/login", userController.Login)
	}

	// --- Authenticated routes ---
	userProtected := router.Group("/user")
	userProtected.Use(authMiddleware.JWTAuth())
	{
		userProtected.GET("/isTokenValid", userController.IsTokenValid)
		userProtected.GET("/getAdvisees", userController.GetAdvisees)
	}

	planner := router.Group("/planner")
	planner.Use(authMiddleware.JWTAuth())
	{
		planner.GET("/data", plannerController.GetData)

		planner.POST("/plan", plannerController.CreatePlan)
		planner.DELETE("/plan", plannerController.DeletePlan)
		planner.POST("/loadPlan", plannerController.LoadPlan)

		planner.POST("/plannedCourse", plannerController.PlaceCourse)
		planner.DELETE("/plannedCourse", plannerController.RemoveCourse)

		planner.PATCH("/studentNotes", plannerController.UpdateStudentNotes)
		planner.PATCH("/advisorNotes", plannerController.UpdateAdvisorNotes)
		planner.PATCH("/planData", plannerController.UpdatePlanData)
		planner.PATCH("/yearCount", plannerController.UpdateYearCount)
	}
}
