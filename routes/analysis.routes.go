package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAnalysisRoutes(router *gin.Engine, analysisController *controllers.AnalysisController) {
	analysisRoutes := router.Group("/api")
	{
		analysisRoutes.POST("/analyze-data", analysisController.AnalyzeData)
		analysisRoutes.POST("/generate-plot", analysisController.GeneratePlot)
	}
}
