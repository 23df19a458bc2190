package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAIRoutes(router *gin.Engine, aiController *controllers.AIController) {
	aiRoutes := router.Group("/api")
	{
		aiRoutes.POST("/ai-insights", aiController.GenerateInsights)
		aiRoutes.POST("/ai-insights/data", aiController.GenerateInsightsFromData)
		aiRoutes.POST("/personalized-workout", aiController.GeneratePersonalizedWorkout)
		aiRoutes.POST("/generate-diet-plan", aiController.GenerateDietPlan)
	}
}
