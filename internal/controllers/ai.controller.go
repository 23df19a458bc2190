package controllers

import (
	"net/http"

	"fittrack/internal/models"
	"fittrack/internal/openrouter"

	"github.com/gin-gonic/gin"
)

// AIController serves the generation endpoints backed by the OpenRouter
// client. Each call is one independent exchange: no retry, no caching of
// the generated text; the user decides whether to persist it.
type AIController struct {
	generator openrouter.Generator
}

func NewAIController(generator openrouter.Generator) *AIController {
	return &AIController{generator: generator}
}

// GenerateInsights godoc
// @Summary Generate AI insights
// @Description Answer a free-form coaching prompt
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.AIInsightRequest true "Prompt"
// @Success 200 {object} map[string]string "Generated insights"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "AI service error"
// @Router /api/ai-insights [post]
func (ai *AIController) GenerateInsights(c *gin.Context) {
	var req models.AIInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	prompt := req.Prompt
	if req.Context != "" {
		prompt = req.Context + "\n\n" + prompt
	}

	insights, err := ai.generator.Generate(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// GenerateInsightsFromData godoc
// @Summary Generate AI insights from a dataset
// @Description Summarize an uploaded CSV and ask the model for insights on it
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} map[string]string "Generated insights"
// @Failure 400 {object} map[string]interface{} "Invalid upload"
// @Failure 502 {object} map[string]interface{} "AI service error"
// @Router /api/ai-insights/data [post]
func (ai *AIController) GenerateInsightsFromData(c *gin.Context) {
	ds, err := readCSVUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	insights, err := ai.generator.Generate(c.Request.Context(), openrouter.BuildDataInsightsPrompt(ds.Report()))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// GeneratePersonalizedWorkout godoc
// @Summary Generate a personalized workout plan
// @Description Build a day-by-day workout plan for the given goal and constraints
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.PersonalizedWorkoutRequest true "Plan parameters"
// @Success 200 {object} map[string]string "Generated workout plan"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "AI service error"
// @Router /api/personalized-workout [post]
func (ai *AIController) GeneratePersonalizedWorkout(c *gin.Context) {
	var req models.PersonalizedWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	plan, err := ai.generator.Generate(c.Request.Context(), openrouter.BuildWorkoutPrompt(req))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workout_plan": plan})
}

// GenerateDietPlan godoc
// @Summary Generate a diet plan
// @Description Build a weekly diet plan for the given person and preferences
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.DietPlanRequest true "Plan parameters"
// @Success 200 {object} map[string]string "Generated diet plan"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "AI service error"
// @Router /api/generate-diet-plan [post]
func (ai *AIController) GenerateDietPlan(c *gin.Context) {
	var req models.DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	plan, err := ai.generator.Generate(c.Request.Context(), openrouter.BuildDietPrompt(req))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"diet_plan": plan})
}
