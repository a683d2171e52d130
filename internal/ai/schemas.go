package ai

import "google.golang.org/genai"

// Response schemas handed to Gemini so replies decode straight into the
// plan types.

func macronutrientSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"protein": {Type: genai.TypeString, Description: "Grams of protein, e.g., '30g'"},
			"carbs":   {Type: genai.TypeString, Description: "Grams of carbohydrates, e.g., '50g'"},
			"fat":     {Type: genai.TypeString, Description: "Grams of fat, e.g., '15g'"},
		},
		Required: []string{"protein", "carbs", "fat"},
	}
}

func mealSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"calories":    {Type: genai.TypeString, Description: "e.g., '450 kcal'"},
			"macros":      macronutrientSchema(),
		},
		Required: []string{"name", "description", "calories", "macros"},
	}
}

func dietPlanSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"breakfast":     mealSchema(),
			"lunch":         mealSchema(),
			"dinner":        mealSchema(),
			"snack":         mealSchema(),
			"totalCalories": {Type: genai.TypeString, Description: "e.g., '2000 kcal'"},
			"totalMacros":   macronutrientSchema(),
		},
		Required: []string{"breakfast", "lunch", "dinner", "snack", "totalCalories", "totalMacros"},
	}
}

func workoutPlanSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {Type: genai.TypeString},
			"focus": {Type: genai.TypeString},
			"exercises": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"sets":        {Type: genai.TypeString},
						"reps":        {Type: genai.TypeString},
						"rest":        {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
					},
					Required: []string{"name", "sets", "reps", "rest", "description"},
				},
			},
		},
		Required: []string{"title", "focus", "exercises"},
	}
}

func styleAdviceSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"dressingStyle": {Type: genai.TypeString},
			"hairstyle":     {Type: genai.TypeString},
			"beardStyle":    {Type: genai.TypeString, Description: "Provide this only for males. If not applicable, omit this field."},
		},
		Required: []string{"dressingStyle", "hairstyle"},
	}
}

func foodListSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"foods": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"foods"},
	}
}

func analyzedFoodItemSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":     {Type: genai.TypeString, Description: "Name of the food item."},
			"calories": {Type: genai.TypeString, Description: "Estimated calories for a standard serving size, e.g. '150 kcal'"},
			"macros":   macronutrientSchema(),
		},
		Required: []string{"name", "calories", "macros"},
	}
}
