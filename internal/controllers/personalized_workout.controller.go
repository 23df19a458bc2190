package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PersonalizedWorkoutController struct {
	repo repository.PersonalizedWorkoutRepository
}

func NewPersonalizedWorkoutController(repo repository.PersonalizedWorkoutRepository) *PersonalizedWorkoutController {
	return &PersonalizedWorkoutController{repo: repo}
}

// SavePersonalizedWorkout godoc
// @Summary Save a personalized workout plan
// @Description Persist a generated workout plan under a name
// @Tags personalized-workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body savePlanRequest true "Plan data"
// @Success 201 {object} map[string]interface{} "Workout plan saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to save workout plan"
// @Router /api/personalized-workouts [post]
func (pc *PersonalizedWorkoutController) SavePersonalizedWorkout(c *gin.Context) {
	var req savePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	plan := models.PersonalizedWorkout{
		UserID: userID.(uint),
		Name:   req.Name,
		Plan:   req.Plan,
	}
	if err := pc.repo.Create(&plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save workout plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout plan saved successfully",
		"data":    plan,
	})
}

// GetPersonalizedWorkouts godoc
// @Summary List saved personalized workout plans
// @Description Retrieve the user's saved workout plans, newest first. Without an identity the list is empty.
// @Tags personalized-workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Workout plans retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve workout plans"
// @Router /api/personalized-workouts [get]
func (pc *PersonalizedWorkoutController) GetPersonalizedWorkouts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Workout plans retrieved successfully",
			"data":    []models.PersonalizedWorkout{},
		})
		return
	}

	plans, err := pc.repo.FindAllByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workout plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout plans retrieved successfully",
		"data":    plans,
	})
}

// DeletePersonalizedWorkout godoc
// @Summary Delete a saved personalized workout plan
// @Description Delete an owned workout plan by id. A foreign or unknown id is not found.
// @Tags personalized-workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout plan ID"
// @Success 200 {object} map[string]interface{} "Workout plan deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid workout plan ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Workout plan not found"
// @Router /api/personalized-workouts/{id} [delete]
func (pc *PersonalizedWorkoutController) DeletePersonalizedWorkout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid workout plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	if err := pc.repo.DeleteByUserID(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Workout plan not found",
				"error":   "No owned workout plan exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete workout plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout plan deleted successfully",
		"data":    nil,
	})
}
