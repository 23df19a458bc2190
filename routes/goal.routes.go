package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterGoalRoutes(router *gin.Engine, goalController *controllers.GoalController) {
	goalRoutes := router.Group("/api/goals")
	{
		goalRoutes.GET("", middleware.OptionalAuthMiddleware(), goalController.GetGoals)
		goalRoutes.POST("", middleware.AuthMiddleware(), goalController.CreateGoal)
		goalRoutes.PATCH("/:id", middleware.AuthMiddleware(), goalController.CompleteGoal)
		goalRoutes.DELETE("/:id", middleware.AuthMiddleware(), goalController.DeleteGoal)
	}
}
