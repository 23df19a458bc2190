package mocks

import (
	"context"
	"time"

	"fittrack/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Shared MockWorkoutRepository
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(workout *models.Workout) error {
	args := m.Called(workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) FindAllByUserID(userID uint, limit int) ([]models.Workout, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) DeleteByUserID(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockWorkoutRepository) DistinctDatesByUserID(userID uint) ([]time.Time, error) {
	args := m.Called(userID)
	return args.Get(0).([]time.Time), args.Error(1)
}

// Shared MockGoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(goal *models.Goal) error {
	args := m.Called(goal)
	return args.Error(0)
}

func (m *MockGoalRepository) FindAllByUserID(userID uint) ([]models.Goal, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Goal), args.Error(1)
}

func (m *MockGoalRepository) SetCompleted(id, userID uint, completed bool) error {
	args := m.Called(id, userID, completed)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteByUserID(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Upsert(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockDietPlanRepository
type MockDietPlanRepository struct {
	mock.Mock
}

func (m *MockDietPlanRepository) Create(plan *models.DietPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockDietPlanRepository) FindAllByUserID(userID uint) ([]models.DietPlan, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.DietPlan), args.Error(1)
}

func (m *MockDietPlanRepository) DeleteByUserID(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// Shared MockPersonalizedWorkoutRepository
type MockPersonalizedWorkoutRepository struct {
	mock.Mock
}

func (m *MockPersonalizedWorkoutRepository) Create(plan *models.PersonalizedWorkout) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockPersonalizedWorkoutRepository) FindAllByUserID(userID uint) ([]models.PersonalizedWorkout, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.PersonalizedWorkout), args.Error(1)
}

func (m *MockPersonalizedWorkoutRepository) DeleteByUserID(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// MockGenerator stands in for the OpenRouter client.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockRouteStore keeps route sessions in memory.
type MockRouteStore struct {
	Sessions map[string][]models.RoutePoint
}

func NewMockRouteStore() *MockRouteStore {
	return &MockRouteStore{Sessions: make(map[string][]models.RoutePoint)}
}

func (m *MockRouteStore) AppendPoint(ctx context.Context, sessionID string, point models.RoutePoint) (int64, error) {
	m.Sessions[sessionID] = append(m.Sessions[sessionID], point)
	return int64(len(m.Sessions[sessionID])), nil
}

func (m *MockRouteStore) Points(ctx context.Context, sessionID string) ([]models.RoutePoint, error) {
	return m.Sessions[sessionID], nil
}

func (m *MockRouteStore) Clear(ctx context.Context, sessionID string) error {
	delete(m.Sessions, sessionID)
	return nil
}

func (m *MockRouteStore) Close() error {
	return nil
}
