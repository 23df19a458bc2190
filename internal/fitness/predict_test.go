package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictWeightLose(t *testing.T) {
	resp := PredictWeight(WeightPredictionRequest{
		Age:           30,
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: "Moderately active",
		Gender:        "Male",
		GoalType:      "lose",
	})

	// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780, TDEE = 1780 * 1.55 = 2759
	assert.Equal(t, 2759.0, resp.TDEE)

	// 0.5 kg/week deficit: 550 kcal/day below TDEE
	assert.Equal(t, 2209.0, resp.DailyCalories)

	// 0.5 kg/week is about 2.14 kg over 30 days
	assert.InDelta(t, 77.86, resp.Predictions["1_month"], 0.01)
	assert.InDelta(t, 75.71, resp.Predictions["2_months"], 0.01)
	assert.InDelta(t, 67.14, resp.Predictions["6_months"], 0.01)

	assert.Equal(t, 160.0, resp.Macros.Protein)
	assert.Equal(t, 64.0, resp.Macros.Fat)
	assert.Greater(t, resp.Macros.Carbs, 0.0)
}

func TestPredictWeightGain(t *testing.T) {
	resp := PredictWeight(WeightPredictionRequest{
		Age:           25,
		HeightCm:      165,
		WeightKg:      55,
		ActivityLevel: "Lightly active",
		Gender:        "Female",
		GoalType:      "gain",
	})

	// gaining: every horizon above the starting weight, in order
	assert.Greater(t, resp.Predictions["1_month"], 55.0)
	assert.Greater(t, resp.Predictions["2_months"], resp.Predictions["1_month"])
	assert.Greater(t, resp.Predictions["6_months"], resp.Predictions["2_months"])

	// surplus target above maintenance
	assert.Greater(t, resp.DailyCalories, resp.TDEE)
}

func TestPredictWeightFemaleBMROffset(t *testing.T) {
	base := WeightPredictionRequest{
		Age:           30,
		HeightCm:      170,
		WeightKg:      70,
		ActivityLevel: "Sedentary",
		GoalType:      "lose",
	}

	male := base
	male.Gender = "Male"
	female := base
	female.Gender = "Female"

	// Mifflin-St Jeor: +5 for men, -161 for women, so 166 kcal of BMR
	// separates them at the 1.2 multiplier
	assert.Equal(t, 199.0, PredictWeight(male).TDEE-PredictWeight(female).TDEE)
}

func TestPredictWeightUnknownActivityDefaultsToSedentary(t *testing.T) {
	known := PredictWeight(WeightPredictionRequest{
		Age: 30, HeightCm: 180, WeightKg: 80, ActivityLevel: "Sedentary", Gender: "Male",
	})
	unknown := PredictWeight(WeightPredictionRequest{
		Age: 30, HeightCm: 180, WeightKg: 80, ActivityLevel: "couch potato", Gender: "Male",
	})

	assert.Equal(t, known.TDEE, unknown.TDEE)
}
