package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fittrack/internal/controllers"
	"fittrack/internal/models"
	"fittrack/tests/mocks"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func setupRouteControllerWithStore() (*controllers.RouteController, *mocks.MockRouteStore) {
	store := mocks.NewMockRouteStore()
	controller := controllers.NewRouteController(store)
	return controller, store
}

func TestCreateRoute(t *testing.T) {
	controller, _ := setupRouteControllerWithStore()

	router := setupTestRouter()
	router.POST("/routes", controller.CreateRoute)

	req := httptest.NewRequest("POST", "/routes", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response["session_id"])
}

func TestCalculateDistance(t *testing.T) {
	controller, _ := setupRouteControllerWithStore()

	router := setupTestRouter()
	router.POST("/routes/calculate-distance", controller.CalculateDistance)

	// two points in central Amsterdam, well under a kilometre apart
	body, _ := json.Marshal([]map[string]interface{}{
		{"latitude": 52.3676, "longitude": 4.9041},
		{"latitude": 52.3702, "longitude": 4.8952},
	})
	req := httptest.NewRequest("POST", "/routes/calculate-distance", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Greater(t, response["distance_km"].(float64), 0.0)
	assert.Less(t, response["distance_km"].(float64), 2.0)
}

func TestCalculateDistanceSinglePoint(t *testing.T) {
	controller, _ := setupRouteControllerWithStore()

	router := setupTestRouter()
	router.POST("/routes/calculate-distance", controller.CalculateDistance)

	body, _ := json.Marshal([]map[string]interface{}{
		{"latitude": 52.3676, "longitude": 4.9041},
	})
	req := httptest.NewRequest("POST", "/routes/calculate-distance", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, response["distance_km"])
}

func TestAddRoutePointAndGetRoute(t *testing.T) {
	controller, _ := setupRouteControllerWithStore()

	router := setupTestRouter()
	router.POST("/routes/:session_id/add-point", controller.AddRoutePoint)
	router.GET("/routes/:session_id", controller.GetRoute)

	points := []map[string]interface{}{
		{"latitude": 52.3676, "longitude": 4.9041},
		{"latitude": 52.3702, "longitude": 4.8952},
	}
	for i, p := range points {
		body, _ := json.Marshal(p)
		req := httptest.NewRequest("POST", "/routes/abc/add-point", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, float64(i+1), response["total_points"])
	}

	req := httptest.NewRequest("GET", "/routes/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response["points"].([]interface{}), 2)
	assert.Greater(t, response["distance_km"].(float64), 0.0)
}

func TestGetRouteUnknownSessionIsEmpty(t *testing.T) {
	controller, _ := setupRouteControllerWithStore()

	router := setupTestRouter()
	router.GET("/routes/:session_id", controller.GetRoute)

	req := httptest.NewRequest("GET", "/routes/never-seen", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Empty(t, response["points"])
	assert.Equal(t, 0.0, response["distance_km"])
}

func TestClearRoute(t *testing.T) {
	controller, store := setupRouteControllerWithStore()
	store.Sessions["abc"] = []models.RoutePoint{{Latitude: 52.3676, Longitude: 4.9041}}

	router := setupTestRouter()
	router.DELETE("/routes/:session_id", controller.ClearRoute)

	req := httptest.NewRequest("DELETE", "/routes/abc", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Sessions["abc"])

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Route cleared successfully", response["message"])
}

func TestRouteWebSocketEchoesDistance(t *testing.T) {
	controller, store := setupRouteControllerWithStore()

	router := setupTestRouter()
	router.GET("/ws/route/:session_id", controller.RouteWebSocket)

	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/route/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	defer conn.Close()

	updates := []map[string]interface{}{
		{"type": "location_update", "latitude": 52.3676, "longitude": 4.9041},
		{"type": "location_update", "latitude": 52.3702, "longitude": 4.8952},
	}
	for i, update := range updates {
		assert.NoError(t, conn.WriteJSON(update))

		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var echo map[string]interface{}
		assert.NoError(t, conn.ReadJSON(&echo))
		assert.Equal(t, "distance_update", echo["type"])
		assert.Equal(t, float64(i+1), echo["total_points"])
	}

	assert.Len(t, store.Sessions["live"], 2)
}

func TestRouteWebSocketIgnoresOtherMessageTypes(t *testing.T) {
	controller, store := setupRouteControllerWithStore()

	router := setupTestRouter()
	router.GET("/ws/route/:session_id", controller.RouteWebSocket)

	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/route/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "chat", "text": "hello"}))
	assert.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type": "location_update", "latitude": 52.3676, "longitude": 4.9041,
	}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var echo map[string]interface{}
	assert.NoError(t, conn.ReadJSON(&echo))
	assert.Equal(t, float64(1), echo["total_points"])
	assert.Len(t, store.Sessions["live"], 1)
}

func TestAddRoutePointMissingCoordinates(t *testing.T) {
	controller, store := setupRouteControllerWithStore()

	router := setupTestRouter()
	router.POST("/routes/:session_id/add-point", controller.AddRoutePoint)

	body, _ := json.Marshal(map[string]interface{}{"timestamp": "2024-03-01T10:00:00Z"})
	req := httptest.NewRequest("POST", "/routes/abc/add-point", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.Sessions["abc"])
}
