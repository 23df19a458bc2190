package controllers

import (
	"net/http"

	"fittrack/internal/fitness"

	"github.com/gin-gonic/gin"
)

// InsightController serves the prediction endpoints. These compute pure
// results and keep the original API's bare response bodies so existing
// clients keep working.
type InsightController struct{}

func NewInsightController() *InsightController {
	return &InsightController{}
}

// PredictWeight godoc
// @Summary Predict weight
// @Description Project weight at 1, 2 and 6 months with a calorie target and macro split
// @Tags insights
// @Accept json
// @Produce json
// @Param request body fitness.WeightPredictionRequest true "Prediction input"
// @Success 200 {object} fitness.WeightPredictionResponse
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/predict-weight [post]
func (ic *InsightController) PredictWeight(c *gin.Context) {
	var req fitness.WeightPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, fitness.PredictWeight(req))
}

// CalculateCalories godoc
// @Summary Calculate calories burned
// @Description Estimate energy burned in one exercise session
// @Tags insights
// @Accept json
// @Produce json
// @Param request body fitness.CalorieCalculationRequest true "Calculation input"
// @Success 200 {object} fitness.CalorieCalculationResponse
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/calculate-calories [post]
func (ic *InsightController) CalculateCalories(c *gin.Context) {
	var req fitness.CalorieCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, fitness.CalculateCalories(req))
}
