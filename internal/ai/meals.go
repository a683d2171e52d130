package ai

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"github.com/auralabs/aura-backend/internal/models"
	"github.com/auralabs/aura-backend/internal/services"
)

// AnalyzeMealImage runs the full scan pipeline: identify the distinct food
// items in the photo, look each one up concurrently, then aggregate totals.
func (c *Client) AnalyzeMealImage(ctx context.Context, imageBytes []byte, mimeType string) (*models.MealAnalysis, error) {
	names, err := c.identifyFoods(ctx, imageBytes, mimeType)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: could not identify any food items in the image, please try another photo", services.ErrGeneration)
	}

	items := make([]models.AnalyzedFoodItem, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			items[i] = c.LookupNutrition(gctx, name)
			return nil
		})
	}
	_ = g.Wait() // lookups degrade to N/A instead of erroring

	analysis := AggregateMeal(items)
	return &analysis, nil
}

func (c *Client) identifyFoods(ctx context.Context, imageBytes []byte, mimeType string) ([]string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(imageBytes, mimeType),
			genai.NewPartFromText("Analyze the food items in this image. List all the distinct food items you can identify. For example: 'chicken breast', 'broccoli florets', 'white rice'."),
		}, genai.RoleUser),
	}

	var out struct {
		Foods []string `json:"foods"`
	}
	if err := c.generateJSON(ctx, contents, foodListSchema(), &out); err != nil {
		return nil, fmt.Errorf("%w: failed to identify food from the image, please try a clearer picture", services.ErrGeneration)
	}
	return out.Foods, nil
}

// LookupNutrition fetches per-serving nutrition for a single food name.
// It never fails: when the model call or decode goes wrong the item comes
// back with every value set to "N/A" so one bad lookup cannot sink a scan.
func (c *Client) LookupNutrition(ctx context.Context, foodName string) models.AnalyzedFoodItem {
	prompt := fmt.Sprintf("Provide the nutritional information (calories, protein, carbs, fat) for a standard serving size of %q. If you are unsure, provide your best estimate. The name in the response should be the same as the food name provided.", foodName)

	var item models.AnalyzedFoodItem
	if err := c.generateJSON(ctx, genai.Text(prompt), analyzedFoodItemSchema(), &item); err != nil {
		log.Printf("nutrition lookup for %q failed: %v", foodName, err)
		return models.AnalyzedFoodItem{
			Name:     titleCase(foodName),
			Calories: "N/A",
			Macros:   models.Macronutrients{Protein: "N/A", Carbs: "N/A", Fat: "N/A"},
		}
	}

	// The model sometimes rewrites the name; keep the queried one.
	item.Name = titleCase(foodName)
	return item
}

// AggregateMeal sums per-item estimates into meal totals. "N/A" and other
// non-numeric values count as zero.
func AggregateMeal(items []models.AnalyzedFoodItem) models.MealAnalysis {
	var calories, protein, carbs, fat float64
	for _, item := range items {
		calories += leadingFloat(item.Calories)
		protein += leadingFloat(item.Macros.Protein)
		carbs += leadingFloat(item.Macros.Carbs)
		fat += leadingFloat(item.Macros.Fat)
	}

	return models.MealAnalysis{
		Items:         items,
		TotalCalories: fmt.Sprintf("%.0f kcal", calories),
		TotalMacros: models.Macronutrients{
			Protein: fmt.Sprintf("%.1fg", protein),
			Carbs:   fmt.Sprintf("%.1fg", carbs),
			Fat:     fmt.Sprintf("%.1fg", fat),
		},
	}
}

// leadingFloat parses the numeric prefix of strings like "150 kcal" or
// "12.5g", returning 0 when there is none.
func leadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (unicode.IsDigit(rune(s[end])) || s[end] == '.' || (end == 0 && s[end] == '-')) {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
