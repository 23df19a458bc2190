package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRouteRoutes(router *gin.Engine, routeController *controllers.RouteController) {
	routeRoutes := router.Group("/api/routes")
	{
		routeRoutes.POST("", routeController.CreateRoute)
		routeRoutes.POST("/calculate-distance", routeController.CalculateDistance)
		routeRoutes.POST("/:session_id/add-point", routeController.AddRoutePoint)
		routeRoutes.GET("/:session_id", routeController.GetRoute)
		routeRoutes.DELETE("/:session_id", routeController.ClearRoute)
	}

	router.GET("/ws/route/:session_id", routeController.RouteWebSocket)
}
