package models

// Types returned by the generative-AI boundary. Values are the model's
// human-readable estimates (e.g. "450 kcal", "30g"), not parsed numbers.

type Macronutrients struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fat     string `json:"fat"`
}

type Meal struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Calories    string         `json:"calories"`
	Macros      Macronutrients `json:"macros"`
	Image       string         `json:"image,omitempty"` // base64 jpeg, absent when generation failed
}

type DietPlan struct {
	Breakfast     Meal           `json:"breakfast"`
	Lunch         Meal           `json:"lunch"`
	Dinner        Meal           `json:"dinner"`
	Snack         Meal           `json:"snack"`
	TotalCalories string         `json:"totalCalories"`
	TotalMacros   Macronutrients `json:"totalMacros"`
}

type Exercise struct {
	Name        string `json:"name"`
	Sets        string `json:"sets"`
	Reps        string `json:"reps"`
	Rest        string `json:"rest"`
	Description string `json:"description"`
}

type WorkoutPlan struct {
	Title     string     `json:"title"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

type StyleAdvice struct {
	DressingStyle      string `json:"dressingStyle"`
	Hairstyle          string `json:"hairstyle"`
	BeardStyle         string `json:"beardStyle,omitempty"`
	DressingStyleImage string `json:"dressingStyleImage,omitempty"`
	HairstyleImage     string `json:"hairstyleImage,omitempty"`
	BeardStyleImage    string `json:"beardStyleImage,omitempty"`
}

type AnalyzedFoodItem struct {
	Name     string         `json:"name"`
	Calories string         `json:"calories"`
	Macros   Macronutrients `json:"macros"`
}

type MealAnalysis struct {
	Items         []AnalyzedFoodItem `json:"items"`
	TotalCalories string             `json:"totalCalories"`
	TotalMacros   Macronutrients     `json:"totalMacros"`
}
