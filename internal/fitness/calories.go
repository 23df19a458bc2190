package fitness

// MET values for exercises without sub-categories.
var metByExercise = map[string]float64{
	"Jogging": 10,
	"Cycling": 8,
}

var weightLiftingMET = map[string]float64{
	"Light Effort":    3,
	"Moderate Effort": 4.5,
	"Vigorous Effort": 6,
}

var swimmingMET = map[string]float64{
	"Leisurely swimming":          6,
	"Backstroke":                  4.8,
	"Breaststroke":                5.3,
	"Freestyle (slow)":            5.8,
	"Freestyle (moderate)":        8.3,
	"Freestyle (fast)":            9.8,
	"Butterfly":                   13.8,
	"Treading water (moderate)":   3.5,
	"Treading water (vigorous)":   7,
}

// The weekly plan returned alongside every calculation. Static content,
// the UI renders it under the result.
var weeklyPlan = []string{
	"Mon/Wed/Fri: Full-body training",
	"Tue/Thu: Cardio (45 mins)",
	"Sat: Light Yoga or Stretch",
	"Sun: Rest",
}

type CalorieCalculationRequest struct {
	Gender        string  `json:"gender" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	DurationMins  float64 `json:"duration_mins" binding:"required"`
	ExerciseType  string  `json:"exercise_type" binding:"required"`
	Intensity     string  `json:"intensity,omitempty"`
	HeartRate     *int    `json:"heart_rate,omitempty"`
	SwimmingStyle string  `json:"swimming_style,omitempty"`
}

type CalorieCalculationResponse struct {
	CaloriesBurned float64  `json:"calories_burned"`
	Method         string   `json:"method"` // "heart_rate" or "met"
	WeeklyPlan     []string `json:"weekly_plan"`
}

// CalculateCalories estimates the energy burned in one session. With a
// heart rate and a steady-state exercise it uses the Keytel regression;
// otherwise it falls back to MET values.
func CalculateCalories(req CalorieCalculationRequest) CalorieCalculationResponse {
	if req.HeartRate != nil && (req.ExerciseType == "Jogging" || req.ExerciseType == "Cycling") {
		hr := float64(*req.HeartRate)
		var perMinute float64
		if req.Gender == "Male" {
			perMinute = (-55.0969 + 0.6309*hr + 0.1988*req.WeightKg + 0.2017*float64(req.Age)) / 4.184
		} else {
			perMinute = (-20.4022 + 0.4472*hr - 0.1263*req.WeightKg + 0.074*float64(req.Age)) / 4.184
		}
		return CalorieCalculationResponse{
			CaloriesBurned: round2(perMinute * req.DurationMins),
			Method:         "heart_rate",
			WeeklyPlan:     weeklyPlan,
		}
	}

	var met float64
	switch req.ExerciseType {
	case "Weight Lifting":
		var ok bool
		if met, ok = weightLiftingMET[req.Intensity]; !ok {
			met = 4.5
		}
	case "Swimming":
		var ok bool
		if met, ok = swimmingMET[req.SwimmingStyle]; !ok {
			met = 6
		}
	default:
		var ok bool
		if met, ok = metByExercise[req.ExerciseType]; !ok {
			met = 5
		}
	}

	calories := met * req.WeightKg * (req.DurationMins / 60)
	return CalorieCalculationResponse{
		CaloriesBurned: round2(calories),
		Method:         "met",
		WeeklyPlan:     weeklyPlan,
	}
}
