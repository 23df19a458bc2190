package models

// Request bodies of the AI generation endpoints. Field names follow the
// public API contract.

type AIInsightRequest struct {
	Prompt  string `json:"prompt" binding:"required"`
	Context string `json:"context,omitempty"`
}

type PersonalizedWorkoutRequest struct {
	Decision      string  `json:"decision" binding:"required"` // "Loose Weight" or "Gain Weight"
	CurrentWeight float64 `json:"current_weight" binding:"required"`
	Aim           float64 `json:"aim" binding:"required"` // kg to lose or gain
	Days          int     `json:"days" binding:"required"`
	ExerciseHours int     `json:"exercise_hours" binding:"required"` // minutes per day
	GymAccess     string  `json:"gym_access" binding:"required"`     // "Yes" or "No"
	DaysPerWeek   int     `json:"days_per_week" binding:"required"`
	WorkoutType   string  `json:"workout_type" binding:"required"`
	FitnessLevel  string  `json:"fitness_level" binding:"required"`
	Injuries      string  `json:"injuries,omitempty"`
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
}

type DietPlanRequest struct {
	Name              string  `json:"name"`
	Age               int     `json:"age" binding:"required"`
	Gender            string  `json:"gender" binding:"required"`
	HeightCm          float64 `json:"height_cm" binding:"required"`
	WeightKg          float64 `json:"weight_kg" binding:"required"`
	GoalType          string  `json:"goal_type" binding:"required"` // Weight Loss, Muscle Gain, Maintenance
	TargetWeight      float64 `json:"target_weight,omitempty"`
	TimelineWeeks     int     `json:"timeline_weeks" binding:"required"`
	Allergies         string  `json:"allergies,omitempty"`
	MedicalConditions string  `json:"medical_conditions,omitempty"`
	DietType          string  `json:"diet_type,omitempty"`
	Restrictions      string  `json:"restrictions,omitempty"`
	MealFrequency     int     `json:"meal_frequency,omitempty"`
	DislikedFoods     string  `json:"disliked_foods,omitempty"`
	PreferredCuisines string  `json:"preferred_cuisines,omitempty"`
}
