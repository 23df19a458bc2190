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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthControllerWithMock() (*controllers.AuthController, *mocks.MockUserRepository) {
	mockRepo := new(mocks.MockUserRepository)
	controller := controllers.NewAuthController(mockRepo)
	return controller, mockRepo
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"name":     "Jane",
				"email":    "jane@example.com",
				"password": "supersecret",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("GetUserByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateUser", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			requestBody: map[string]interface{}{
				"name":     "Jane",
				"email":    "jane@example.com",
				"password": "supersecret",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("GetUserByEmail", "jane@example.com").Return(&models.User{Email: "jane@example.com"}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "invalid email",
			requestBody: map[string]interface{}{
				"name":     "Jane",
				"email":    "not-an-email",
				"password": "supersecret",
			},
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			requestBody: map[string]interface{}{
				"name":     "Jane",
				"email":    "jane@example.com",
				"password": "short",
			},
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupAuthControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/auth/register", controller.Register)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRegisterNeverStoresPlaintextPassword(t *testing.T) {
	controller, mockRepo := setupAuthControllerWithMock()
	mockRepo.On("GetUserByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("CreateUser", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*models.User)
		assert.NotEqual(t, "supersecret", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")))
	}).Return(nil)

	router := setupTestRouter()
	router.POST("/auth/register", controller.Register)

	body, _ := json.Marshal(map[string]interface{}{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "supersecret",
	})
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestMe(t *testing.T) {
	controller, mockRepo := setupAuthControllerWithMock()
	mockRepo.On("GetUserByID", uint(7)).Return(&models.User{Name: "Jane", Email: "jane@example.com"}, nil)

	router := setupTestRouter()
	router.GET("/auth/me", addAuthMiddleware(7), controller.Me)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", data["email"])
	mockRepo.AssertExpectations(t)
}

func TestMeUnknownUser(t *testing.T) {
	controller, mockRepo := setupAuthControllerWithMock()
	mockRepo.On("GetUserByID", uint(7)).Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.GET("/auth/me", addAuthMiddleware(7), controller.Me)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	storedUser := &models.User{Name: "Jane", Email: "jane@example.com", Password: string(hashed)}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"email":    "jane@example.com",
				"password": "supersecret",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("GetUserByEmail", "jane@example.com").Return(storedUser, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			requestBody: map[string]interface{}{
				"email":    "jane@example.com",
				"password": "wrongpassword",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("GetUserByEmail", "jane@example.com").Return(storedUser, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			requestBody: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "supersecret",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("GetUserByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupAuthControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/auth/login", controller.Login)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				data := response["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
