package fitness

import "math"

// Energy density of body mass used to convert a calorie surplus or
// deficit into kilograms.
const caloriesPerKg = 7700

// Safe default rates: 0.5 kg/week when losing, 0.25 kg/week when gaining.
const (
	weeklyLossKg = 0.5
	weeklyGainKg = 0.25
)

var activityMultipliers = map[string]float64{
	"Sedentary":         1.2,
	"Lightly active":    1.375,
	"Moderately active": 1.55,
	"Very active":       1.725,
	"Super active":      1.9,
}

type WeightPredictionRequest struct {
	Age           int     `json:"age" binding:"required"`
	HeightCm      float64 `json:"height_cm" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	ActivityLevel string  `json:"activity_level"`
	Gender        string  `json:"gender"`
	GoalType      string  `json:"goal_type"` // "lose" or "gain"
}

type Macros struct {
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Carbs   float64 `json:"carbs"`
}

type WeightPredictionResponse struct {
	Predictions   map[string]float64 `json:"predictions"`
	Macros        Macros             `json:"macros"`
	DailyCalories float64            `json:"daily_calories"`
	TDEE          float64            `json:"tdee"`
}

// PredictWeight projects body weight at 1, 2 and 6 months assuming a
// steady, moderate rate of change, and derives a daily calorie target
// with a macro split (2 g/kg protein, 0.8 g/kg fat, carbs from the rest).
// BMR follows Mifflin-St Jeor; TDEE applies the activity multiplier.
func PredictWeight(req WeightPredictionRequest) WeightPredictionResponse {
	bmr := 10*req.WeightKg + 6.25*req.HeightCm - 5*float64(req.Age)
	if isMale(req.Gender) {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[req.ActivityLevel]
	if !ok {
		multiplier = 1.2
	}
	tdee := bmr * multiplier

	weeklyKg := weeklyGainKg
	sign := 1.0
	if req.GoalType == "lose" {
		weeklyKg = weeklyLossKg
		sign = -1
	}
	dailyCalorieChange := weeklyKg * caloriesPerKg / 7

	predictAfter := func(days float64) float64 {
		change := sign * (dailyCalorieChange * days) / caloriesPerKg
		return round2(req.WeightKg + change)
	}

	protein := req.WeightKg * 2
	fat := req.WeightKg * 0.8
	carbs := (tdee - (protein*4 + fat*9)) / 4

	return WeightPredictionResponse{
		Predictions: map[string]float64{
			"1_month":  predictAfter(30),
			"2_months": predictAfter(60),
			"6_months": predictAfter(180),
		},
		Macros: Macros{
			Protein: round1(protein),
			Fat:     round1(fat),
			Carbs:   round1(carbs),
		},
		DailyCalories: math.Round(tdee + sign*dailyCalorieChange),
		TDEE:          math.Round(tdee),
	}
}

func isMale(gender string) bool {
	switch gender {
	case "Male", "male", "M", "m":
		return true
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
