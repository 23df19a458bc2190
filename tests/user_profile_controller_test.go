package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/internal/controllers"
	"fittrack/internal/models"
	"fittrack/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupProfileControllerWithMock() (*controllers.UserProfileController, *mocks.MockUserProfileRepository) {
	mockRepo := new(mocks.MockUserProfileRepository)
	controller := controllers.NewUserProfileController(mockRepo)
	return controller, mockRepo
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestGetUserProfile(t *testing.T) {
	controller, mockRepo := setupProfileControllerWithMock()
	profile := &models.UserProfile{
		ID:       1,
		UserID:   1,
		Name:     "Jane",
		HeightCm: floatPtr(170),
		WeightKg: floatPtr(65.5),
		Age:      intPtr(29),
		Gender:   "Female",
	}
	mockRepo.On("FindByUserID", uint(1)).Return(profile, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/profile", controller.GetUserProfile)

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Jane", data["name"])
	assert.Equal(t, float64(170), data["height_cm"])

	mockRepo.AssertExpectations(t)
}

func TestGetUserProfileNotFound(t *testing.T) {
	controller, mockRepo := setupProfileControllerWithMock()
	mockRepo.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/profile", controller.GetUserProfile)

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpsertUserProfile(t *testing.T) {
	controller, mockRepo := setupProfileControllerWithMock()
	mockRepo.On("Upsert", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(7))
	router.PUT("/profile", controller.UpsertUserProfile)

	body, _ := json.Marshal(map[string]interface{}{
		"name":      "Jane",
		"height_cm": 170,
		"weight_kg": 65.5,
		"age":       29,
		"gender":    "Female",
		"user_id":   999, // must be overridden by the token identity
	})
	req := httptest.NewRequest("PUT", "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["user_id"])

	mockRepo.AssertExpectations(t)
}

func TestUpsertUserProfileUnauthorized(t *testing.T) {
	controller, mockRepo := setupProfileControllerWithMock()

	router := setupTestRouter()
	router.PUT("/profile", controller.UpsertUserProfile)

	body, _ := json.Marshal(map[string]interface{}{"name": "Jane"})
	req := httptest.NewRequest("PUT", "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockRepo.AssertNotCalled(t, "Upsert")
}

func TestDeleteUserProfile(t *testing.T) {
	controller, mockRepo := setupProfileControllerWithMock()
	mockRepo.On("DeleteByUserID", uint(1)).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/profile", controller.DeleteUserProfile)

	req := httptest.NewRequest("DELETE", "/profile", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}
