package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDietPlanRoutes(router *gin.Engine, dietPlanController *controllers.DietPlanController) {
	dietPlanRoutes := router.Group("/api/diet-plans")
	{
		dietPlanRoutes.GET("", middleware.OptionalAuthMiddleware(), dietPlanController.GetDietPlans)
		dietPlanRoutes.POST("", middleware.AuthMiddleware(), dietPlanController.SaveDietPlan)
		dietPlanRoutes.DELETE("/:id", middleware.AuthMiddleware(), dietPlanController.DeleteDietPlan)
	}
}

func RegisterPersonalizedWorkoutRoutes(router *gin.Engine, workoutPlanController *controllers.PersonalizedWorkoutController) {
	workoutPlanRoutes := router.Group("/api/personalized-workouts")
	{
		workoutPlanRoutes.GET("", middleware.OptionalAuthMiddleware(), workoutPlanController.GetPersonalizedWorkouts)
		workoutPlanRoutes.POST("", middleware.AuthMiddleware(), workoutPlanController.SavePersonalizedWorkout)
		workoutPlanRoutes.DELETE("/:id", middleware.AuthMiddleware(), workoutPlanController.DeletePersonalizedWorkout)
	}
}
