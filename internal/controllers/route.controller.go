package controllers

import (
	"net/http"
	"sync"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/geo"
	"fittrack/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type RouteController struct {
	store cache.RouteStore
}

func NewRouteController(store cache.RouteStore) *RouteController {
	return &RouteController{store: store}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// CreateRoute godoc
// @Summary Start a tracking session
// @Description Create a new route tracking session and return its id
// @Tags routes
// @Produce json
// @Success 201 {object} map[string]string "Session created"
// @Router /api/routes [post]
func (rc *RouteController) CreateRoute(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"session_id": uuid.NewString()})
}

// CalculateDistance godoc
// @Summary Calculate route distance
// @Description Sum the distance over an ad-hoc list of points
// @Tags routes
// @Accept json
// @Produce json
// @Param points body []models.RoutePoint true "Route points"
// @Success 200 {object} map[string]float64 "Total distance"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/routes/calculate-distance [post]
func (rc *RouteController) CalculateDistance(c *gin.Context) {
	var points []models.RoutePoint
	if err := c.ShouldBindJSON(&points); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"distance_km": geo.TotalDistanceKm(points)})
}

// AddRoutePoint godoc
// @Summary Add a point to a session
// @Description Append a GPS point to an active tracking session
// @Tags routes
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param point body models.RoutePoint true "Route point"
// @Success 200 {object} map[string]interface{} "Point added"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to store point"
// @Router /api/routes/{session_id}/add-point [post]
func (rc *RouteController) AddRoutePoint(c *gin.Context) {
	sessionID := c.Param("session_id")

	var point models.RoutePoint
	if err := c.ShouldBindJSON(&point); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if point.Timestamp == "" {
		point.Timestamp = time.Now().Format(time.RFC3339)
	}

	total, err := rc.store.AppendPoint(c.Request.Context(), sessionID, point)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	points, err := rc.store.Points(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Point added successfully",
		"total_points": total,
		"distance_km":  geo.TotalDistanceKm(points),
	})
}

// GetRoute godoc
// @Summary Get a session's route
// @Description Return the points and distance of a tracking session; unknown sessions are empty
// @Tags routes
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Route data"
// @Failure 500 {object} map[string]interface{} "Failed to read route"
// @Router /api/routes/{session_id} [get]
func (rc *RouteController) GetRoute(c *gin.Context) {
	points, err := rc.store.Points(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points":      points,
		"distance_km": geo.TotalDistanceKm(points),
	})
}

// ClearRoute godoc
// @Summary End a session
// @Description Clear a tracking session's stored points
// @Tags routes
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} map[string]string "Route cleared"
// @Failure 500 {object} map[string]interface{} "Failed to clear route"
// @Router /api/routes/{session_id} [delete]
func (rc *RouteController) ClearRoute(c *gin.Context) {
	if err := rc.store.Clear(c.Request.Context(), c.Param("session_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Route cleared successfully"})
}

type locationUpdate struct {
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// RouteWebSocket streams location updates into a session and echoes the
// running distance after each point.
func (rc *RouteController) RouteWebSocket(c *gin.Context) {
	sessionID := c.Param("session_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// The connection permits one writer at a time; the ping ticker and the
	// distance echoes below share it, so every write takes writeMu.
	var writeMu sync.Mutex

	// keep connections alive through proxies
	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				writeMu.Lock()
				err := conn.WriteMessage(websocket.PingMessage, nil)
				writeMu.Unlock()
				if err != nil {
					return
				}
			}
		}
	}()

	ctx := c.Request.Context()
	for {
		var update locationUpdate
		if err := conn.ReadJSON(&update); err != nil {
			return
		}
		if update.Type != "location_update" {
			continue
		}

		point := models.RoutePoint{
			Latitude:  update.Latitude,
			Longitude: update.Longitude,
			Timestamp: update.Timestamp,
		}
		if point.Timestamp == "" {
			point.Timestamp = time.Now().Format(time.RFC3339)
		}

		total, err := rc.store.AppendPoint(ctx, sessionID, point)
		if err != nil {
			return
		}
		points, err := rc.store.Points(ctx, sessionID)
		if err != nil {
			return
		}

		writeMu.Lock()
		err = conn.WriteJSON(gin.H{
			"type":         "distance_update",
			"distance_km":  geo.TotalDistanceKm(points),
			"total_points": total,
		})
		writeMu.Unlock()
		if err != nil {
			return
		}
	}
}
