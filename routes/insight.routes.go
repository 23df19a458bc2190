package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterInsightRoutes(router *gin.Engine, insightController *controllers.InsightController) {
	insightRoutes := router.Group("/api")
	{
		insightRoutes.POST("/predict-weight", insightController.PredictWeight)
		insightRoutes.POST("/calculate-calories", insightController.CalculateCalories)
	}
}
