package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GoalController struct {
	repo repository.GoalRepository
}

func NewGoalController(repo repository.GoalRepository) *GoalController {
	return &GoalController{repo: repo}
}

type createGoalRequest struct {
	Goal       string `json:"goal" binding:"required"`
	TargetDate string `json:"target_date" binding:"required"`
}

type completeGoalRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// CreateGoal godoc
// @Summary Create a goal
// @Description Add a goal for the authenticated user
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param goal body createGoalRequest true "Goal data"
// @Success 201 {object} map[string]interface{} "Goal created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to create goal"
// @Router /api/goals [post]
func (gc *GoalController) CreateGoal(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "target_date must use the YYYY-MM-DD format",
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

	goal := models.Goal{
		UserID:     userID.(uint),
		Goal:       req.Goal,
		TargetDate: targetDate,
	}
	if err := gc.repo.Create(&goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create goal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Goal created successfully",
		"data":    goal,
	})
}

// GetGoals godoc
// @Summary List goals
// @Description Retrieve the user's goals ordered by target date. Without an identity the list is empty.
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Goals retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve goals"
// @Router /api/goals [get]
func (gc *GoalController) GetGoals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Goals retrieved successfully",
			"data":    []models.Goal{},
		})
		return
	}

	goals, err := gc.repo.FindAllByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve goals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goals retrieved successfully",
		"data":    goals,
	})
}

// CompleteGoal godoc
// @Summary Toggle goal completion
// @Description Set the completed flag of an owned goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Param completed body completeGoalRequest true "Completion flag"
// @Success 200 {object} map[string]interface{} "Goal updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Router /api/goals/{id} [patch]
func (gc *GoalController) CompleteGoal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid goal ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req completeGoalRequest
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

	if err := gc.repo.SetCompleted(uint(id), userID.(uint), *req.Completed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Goal not found",
				"error":   "No owned goal exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update goal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goal updated successfully",
		"data":    nil,
	})
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Description Delete an owned goal by id. A foreign or unknown id is not found.
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Success 200 {object} map[string]interface{} "Goal deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid goal ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Router /api/goals/{id} [delete]
func (gc *GoalController) DeleteGoal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid goal ID",
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

	if err := gc.repo.DeleteByUserID(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Goal not found",
				"error":   "No owned goal exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete goal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goal deleted successfully",
		"data":    nil,
	})
}
