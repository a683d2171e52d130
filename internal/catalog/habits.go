// Package catalog holds the fixed habit catalog users are seeded from at
// sign-up. The catalog never changes at runtime; ids are stable and unique
// across the whole set.
package catalog

import "github.com/auralabs/aura-backend/internal/models"

var initialHabits = []models.Habit{
	// Weight Loss
	{ID: 1, Text: "30 minutes of cardio (running, cycling)", XP: 20, Category: models.GoalWeightLoss},
	{ID: 2, Text: "Drink 8 glasses of water", XP: 10, Category: models.GoalWeightLoss},
	{ID: 3, Text: "Avoid sugary drinks and snacks", XP: 15, Category: models.GoalWeightLoss},
	{ID: 4, Text: "Full body HIIT workout", XP: 25, Category: models.GoalWeightLoss},
	{ID: 5, Text: "Eat a high-protein breakfast", XP: 10, Category: models.GoalWeightLoss},

	// Weight Gain
	{ID: 6, Text: "Strength training session (e.g., lifting weights)", XP: 25, Category: models.GoalWeightGain},
	{ID: 7, Text: "Eat 3 high-calorie, nutrient-dense meals", XP: 20, Category: models.GoalWeightGain},
	{ID: 8, Text: "Consume a protein shake post-workout", XP: 15, Category: models.GoalWeightGain},
	{ID: 9, Text: "Get at least 8 hours of sleep for muscle recovery", XP: 10, Category: models.GoalWeightGain},
	{ID: 10, Text: "Add healthy fats to your diet (avocado, nuts)", XP: 10, Category: models.GoalWeightGain},

	// Core Strength
	{ID: 11, Text: "Complete a 15-minute core workout (planks, crunches)", XP: 20, Category: models.GoalCoreStrength},
	{ID: 12, Text: "Practice yoga or Pilates for 30 minutes", XP: 20, Category: models.GoalCoreStrength},
	{ID: 13, Text: "Maintain good posture throughout the day", XP: 10, Category: models.GoalCoreStrength},
	{ID: 14, Text: "Perform compound exercises (squats, deadlifts)", XP: 25, Category: models.GoalCoreStrength},
	{ID: 15, Text: "Engage your core during all exercises", XP: 10, Category: models.GoalCoreStrength},

	// Stamina
	{ID: 16, Text: "Long-distance run or swim (at least 45 minutes)", XP: 30, Category: models.GoalStamina},
	{ID: 17, Text: "Incorporate interval training into your workout", XP: 25, Category: models.GoalStamina},
	{ID: 18, Text: "Stay hydrated before, during, and after exercise", XP: 10, Category: models.GoalStamina},
	{ID: 19, Text: "Practice deep breathing exercises for 5 minutes", XP: 5, Category: models.GoalStamina},
	{ID: 20, Text: "Focus on complex carbs for sustained energy", XP: 15, Category: models.GoalStamina},

	// Build Muscle
	{ID: 21, Text: "Progressive overload strength training", XP: 30, Category: models.GoalBuildMuscle},
	{ID: 22, Text: "Hit your daily protein target (e.g., 1.6g/kg)", XP: 20, Category: models.GoalBuildMuscle},
	{ID: 23, Text: "Eat a slight calorie surplus", XP: 15, Category: models.GoalBuildMuscle},
	{ID: 24, Text: "Prioritize sleep for muscle repair (7-9 hours)", XP: 10, Category: models.GoalBuildMuscle},
	{ID: 25, Text: "Stay hydrated to support muscle function", XP: 5, Category: models.GoalBuildMuscle},

	// Improve Flexibility
	{ID: 26, Text: "Perform 15 minutes of dynamic stretching", XP: 20, Category: models.GoalImproveFlexibility},
	{ID: 27, Text: "Hold static stretches for 30+ seconds post-workout", XP: 15, Category: models.GoalImproveFlexibility},
	{ID: 28, Text: "Attend a yoga or mobility class", XP: 25, Category: models.GoalImproveFlexibility},
	{ID: 29, Text: "Use a foam roller on tight muscles", XP: 10, Category: models.GoalImproveFlexibility},
	{ID: 30, Text: "Take short stretch breaks during your workday", XP: 10, Category: models.GoalImproveFlexibility},

	// Maintain Weight
	{ID: 31, Text: "Eat a balanced diet with whole foods", XP: 20, Category: models.GoalMaintainWeight},
	{ID: 32, Text: "Engage in 30 minutes of moderate activity", XP: 20, Category: models.GoalMaintainWeight},
	{ID: 33, Text: "Practice mindful eating, listen to hunger cues", XP: 15, Category: models.GoalMaintainWeight},
	{ID: 34, Text: "Monitor weight weekly to stay on track", XP: 5, Category: models.GoalMaintainWeight},
	{ID: 35, Text: "Limit processed foods and added sugars", XP: 15, Category: models.GoalMaintainWeight},

	// Eat Healthier
	{ID: 36, Text: "Eat 5 servings of fruits and vegetables", XP: 20, Category: models.GoalEatHealthier},
	{ID: 37, Text: "Choose whole grains over refined grains", XP: 15, Category: models.GoalEatHealthier},
	{ID: 38, Text: "Cook a meal at home instead of eating out", XP: 20, Category: models.GoalEatHealthier},
	{ID: 39, Text: "Read nutrition labels when shopping", XP: 10, Category: models.GoalEatHealthier},
	{ID: 40, Text: "Replace a sugary drink with water", XP: 15, Category: models.GoalEatHealthier},
}

// SeedHabits returns fresh, uncompleted copies of the catalog habits for
// the given goal.
func SeedHabits(goal models.Goal) []models.Habit {
	var habits []models.Habit
	for _, h := range initialHabits {
		if h.Category == goal {
			h.Completed = false
			habits = append(habits, h)
		}
	}
	return habits
}

// All returns a copy of the full catalog.
func All() []models.Habit {
	return append([]models.Habit(nil), initialHabits...)
}
