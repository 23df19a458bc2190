package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Reads resolve the identity when a token is present and fall back to an
// empty result otherwise; only mutations require authentication.
func RegisterWorkoutRoutes(router *gin.Engine, workoutController *controllers.WorkoutController) {
	workoutRoutes := router.Group("/api/workouts")
	{
		workoutRoutes.GET("", middleware.OptionalAuthMiddleware(), workoutController.GetWorkouts)
		workoutRoutes.GET("/streak", middleware.OptionalAuthMiddleware(), workoutController.GetWorkoutStreak)
		workoutRoutes.POST("", middleware.AuthMiddleware(), workoutController.LogWorkout)
		workoutRoutes.DELETE("/:id", middleware.AuthMiddleware(), workoutController.DeleteWorkout)
	}
}
