package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/fitness"
	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkoutController struct {
	repo repository.WorkoutRepository
}

func NewWorkoutController(repo repository.WorkoutRepository) *WorkoutController {
	return &WorkoutController{repo: repo}
}

type logWorkoutRequest struct {
	Date     string  `json:"date" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Duration float64 `json:"duration"`
	Calories float64 `json:"calories"`
	Notes    string  `json:"notes"`
}

// LogWorkout godoc
// @Summary Log a workout
// @Description Create a workout entry for the authenticated user
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body logWorkoutRequest true "Workout data"
// @Success 201 {object} map[string]interface{} "Workout logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to log workout"
// @Router /api/workouts [post]
func (wc *WorkoutController) LogWorkout(c *gin.Context) {
	var req logWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "date must use the YYYY-MM-DD format",
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

	workout := models.Workout{
		UserID:   userID.(uint),
		Date:     date,
		Type:     req.Type,
		Duration: req.Duration,
		Calories: req.Calories,
		Notes:    req.Notes,
	}
	if err := wc.repo.Create(&workout); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout logged successfully",
		"data":    workout,
	})
}

// GetWorkouts godoc
// @Summary List workouts
// @Description Retrieve the user's workouts, newest first. Without an identity the list is empty.
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries to return" default(100)
// @Success 200 {object} map[string]interface{} "Workouts retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve workouts"
// @Router /api/workouts [get]
func (wc *WorkoutController) GetWorkouts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Workouts retrieved successfully",
			"data":    []models.Workout{},
		})
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit",
				"error":   "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	workouts, err := wc.repo.FindAllByUserID(userID.(uint), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workouts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workouts retrieved successfully",
		"data":    workouts,
	})
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Description Delete an owned workout by id. A foreign or unknown id is not found.
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} map[string]interface{} "Workout deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid workout ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Workout not found"
// @Router /api/workouts/{id} [delete]
func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid workout ID",
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

	if err := wc.repo.DeleteByUserID(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Workout not found",
				"error":   "No owned workout exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout deleted successfully",
		"data":    nil,
	})
}

// GetWorkoutStreak godoc
// @Summary Get workout streak
// @Description Count consecutive workout days over the full history
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Streak computed successfully"
// @Failure 500 {object} map[string]interface{} "Failed to compute streak"
// @Router /api/workouts/streak [get]
func (wc *WorkoutController) GetWorkoutStreak(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Streak computed successfully",
			"data":    gin.H{"streak": 0},
		})
		return
	}

	dates, err := wc.repo.DistinctDatesByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute streak",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Streak computed successfully",
		"data":    gin.H{"streak": fitness.Streak(dates)},
	})
}
