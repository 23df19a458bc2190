package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, profileController *controllers.UserProfileController) {
	profileRoutes := router.Group("/api/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.GET("", profileController.GetUserProfile)
		profileRoutes.PUT("", profileController.UpsertUserProfile)
		profileRoutes.DELETE("", profileController.DeleteUserProfile)
	}
}
