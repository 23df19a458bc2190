package openrouter

import (
	"fmt"

	"fittrack/internal/models"
)

// BuildWorkoutPrompt phrases a personalized workout request for the model.
func BuildWorkoutPrompt(req models.PersonalizedWorkoutRequest) string {
	return fmt.Sprintf(`You are a professional fitness coach. Based on the following goals and constraints, generate a **daily detailed workout plan** for the entire duration:

Goal: %s %.1f kg in %d days
Current weight: %.1f kg
Gender: %s
Age: %d
Daily Exercise Time: %d minutes
Days/Week: %d
Workout Type: %s
Fitness Level: %s
Gym Access: %s
Injuries or limitations: %s

Instructions:
- Provide a complete workout schedule for %d days
- Each day should include warm-up, main workout, cool-down
- Mention sets, reps, rest time
- Tailor intensity to fitness level, gender, and age
- Make sure the plan is safe and progressive
- Output in a clear, readable format
`,
		req.Decision, req.Aim, req.Days,
		req.CurrentWeight, req.Gender, req.Age,
		req.ExerciseHours, req.DaysPerWeek,
		req.WorkoutType, req.FitnessLevel, req.GymAccess, req.Injuries,
		req.Days)
}

// BuildDietPrompt phrases a diet plan request for the model.
func BuildDietPrompt(req models.DietPlanRequest) string {
	return fmt.Sprintf(`You are a professional nutritionist. Create a **day-by-day diet plan** for the following person:

Name: %s
Age: %d
Gender: %s
Height: %.1f cm
Current weight: %.1f kg
Goal: %s (target weight %.1f kg in %d weeks)
Diet type: %s
Meals per day: %d
Allergies: %s
Medical conditions: %s
Restrictions: %s
Disliked foods: %s
Preferred cuisines: %s

Instructions:
- Cover a full week, with every meal listed per day
- Give approximate calories and macros per meal
- Respect every allergy, restriction and medical condition strictly
- Keep the plan realistic and affordable
- Output in a clear, readable format
`,
		req.Name, req.Age, req.Gender,
		req.HeightCm, req.WeightKg,
		req.GoalType, req.TargetWeight, req.TimelineWeeks,
		req.DietType, req.MealFrequency,
		req.Allergies, req.MedicalConditions, req.Restrictions,
		req.DislikedFoods, req.PreferredCuisines)
}

// BuildDataInsightsPrompt wraps a dataset report in the analysis request.
func BuildDataInsightsPrompt(report string) string {
	return fmt.Sprintf(`You are a fitness data analyst. Based on the uploaded workout dataset, generate AI-powered insights.

%s

Instructions:
- Provide 3 key insights (patterns, trends, outliers, or anomalies)
- Provide 3 actionable recommendations to improve health/workout
- Suggest 2 charts/plots that would help visualize the trends

Format everything in clear bullet points.
`, report)
}
