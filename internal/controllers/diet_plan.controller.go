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

type DietPlanController struct {
	repo repository.DietPlanRepository
}

func NewDietPlanController(repo repository.DietPlanRepository) *DietPlanController {
	return &DietPlanController{repo: repo}
}

type savePlanRequest struct {
	Name string `json:"name" binding:"required"`
	Plan string `json:"plan" binding:"required"`
}

// SaveDietPlan godoc
// @Summary Save a diet plan
// @Description Persist a generated diet plan under a name
// @Tags diet-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body savePlanRequest true "Plan data"
// @Success 201 {object} map[string]interface{} "Diet plan saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to save diet plan"
// @Router /api/diet-plans [post]
func (dc *DietPlanController) SaveDietPlan(c *gin.Context) {
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

	plan := models.DietPlan{
		UserID: userID.(uint),
		Name:   req.Name,
		Plan:   req.Plan,
	}
	if err := dc.repo.Create(&plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save diet plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Diet plan saved successfully",
		"data":    plan,
	})
}

// GetDietPlans godoc
// @Summary List saved diet plans
// @Description Retrieve the user's saved diet plans, newest first. Without an identity the list is empty.
// @Tags diet-plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Diet plans retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve diet plans"
// @Router /api/diet-plans [get]
func (dc *DietPlanController) GetDietPlans(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Diet plans retrieved successfully",
			"data":    []models.DietPlan{},
		})
		return
	}

	plans, err := dc.repo.FindAllByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve diet plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diet plans retrieved successfully",
		"data":    plans,
	})
}

// DeleteDietPlan godoc
// @Summary Delete a saved diet plan
// @Description Delete an owned diet plan by id. A foreign or unknown id is not found.
// @Tags diet-plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Diet plan ID"
// @Success 200 {object} map[string]interface{} "Diet plan deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid diet plan ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Diet plan not found"
// @Router /api/diet-plans/{id} [delete]
func (dc *DietPlanController) DeleteDietPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid diet plan ID",
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

	if err := dc.repo.DeleteByUserID(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Diet plan not found",
				"error":   "No owned diet plan exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete diet plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diet plan deleted successfully",
		"data":    nil,
	})
}
