package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/auralabs/aura-backend/internal/models"
)

func describeSubject(p models.UserProfile) string {
	return fmt.Sprintf("a %d-year-old %s whose goal is %s", p.Age, p.Gender, p.Goal)
}

func weightDetails(p models.UserProfile) string {
	if p.CurrentWeight != nil && p.TargetWeight != nil {
		return fmt.Sprintf(" Their current weight is %.0fkg and their target weight is %.0fkg.", *p.CurrentWeight, *p.TargetWeight)
	}
	return ""
}

func vibeDetails(vibe *models.DailyVibe, adaptation string) string {
	if vibe == nil {
		return ""
	}
	return fmt.Sprintf(" Today, their sleep was %s, energy is %s, and mood is %s. %s", vibe.Sleep, vibe.Energy, vibe.Mood, adaptation)
}

// GenerateDietPlan produces a one-day plan flavored by the user's goal,
// demographics and today's vibe, then attaches best-effort meal images.
func (c *Client) GenerateDietPlan(ctx context.Context, profile models.UserProfile, vibe *models.DailyVibe) (*models.DietPlan, error) {
	prompt := "Generate a one-day sample diet plan for " + describeSubject(profile) + "."
	prompt += weightDetails(profile)
	prompt += vibeDetails(vibe, "Tailor the suggestions slightly to this vibe. For example, if energy is low, suggest a more energizing snack or a comfort-but-healthy meal.")
	prompt += " Include a delicious and healthy breakfast, lunch, dinner, and a snack. For each meal and for the total day, provide estimated calories and macronutrient breakdown (protein, carbs, fat)."

	var plan models.DietPlan
	if err := c.generateJSON(ctx, genai.Text(prompt), dietPlanSchema(), &plan); err != nil {
		return nil, err
	}

	meals := []*models.Meal{&plan.Breakfast, &plan.Lunch, &plan.Dinner, &plan.Snack}
	prompts := make([]string, len(meals))
	for i, m := range meals {
		prompts[i] = fmt.Sprintf("A delicious plate of %s, %s, food photography style.", m.Name, m.Description)
	}
	for i, img := range bestEffortImages(ctx, prompts, c.GenerateImage) {
		meals[i].Image = img
	}

	return &plan, nil
}

// GenerateWorkoutPlan produces a single-day routine of 5-7 exercises.
func (c *Client) GenerateWorkoutPlan(ctx context.Context, profile models.UserProfile, vibe *models.DailyVibe) (*models.WorkoutPlan, error) {
	prompt := fmt.Sprintf("Create a single-day workout routine for a %d-year-old %s focused on %s.", profile.Age, profile.Gender, profile.Goal)
	prompt += weightDetails(profile)
	prompt += vibeDetails(vibe, "Adapt the workout's intensity and add a motivational tip based on this vibe. For example, if energy is low, suggest reducing sets or focusing on form. If energy is high, suggest pushing for an extra rep.")
	prompt += " The plan should be appropriate for their age. It should include a title, the main focus, and a list of 5-7 exercises. For each exercise, specify the name, number of sets, number of reps, rest time, and a brief description or tip."

	var plan models.WorkoutPlan
	if err := c.generateJSON(ctx, genai.Text(prompt), workoutPlanSchema(), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// GenerateStyleAdvice analyzes the user's photo and suggests dressing,
// hair and (for males) beard styles, each with a best-effort example image.
func (c *Client) GenerateStyleAdvice(ctx context.Context, imageBytes []byte, mimeType string, profile models.UserProfile) (*models.StyleAdvice, error) {
	text := fmt.Sprintf("I am a %d-year-old %s with a health goal of %s. Based on the attached photo, analyze my body type and face shape. Provide personalized suggestions for: 1. Dressing styles and outfits that would be flattering. 2. A suitable hairstyle. 3. (If male) A suitable beard style. Keep the suggestions concise and actionable.", profile.Age, profile.Gender, profile.Goal)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(imageBytes, mimeType),
			genai.NewPartFromText(text),
		}, genai.RoleUser),
	}

	var advice models.StyleAdvice
	if err := c.generateJSON(ctx, contents, styleAdviceSchema(), &advice); err != nil {
		return nil, err
	}

	prompts := []string{
		fmt.Sprintf("A fashion photo of a %s model wearing this style: %s", profile.Gender, advice.DressingStyle),
		fmt.Sprintf("A photo of a %s person with this hairstyle: %s", profile.Gender, advice.Hairstyle),
		"",
	}
	if profile.Gender == models.GenderMale && advice.BeardStyle != "" {
		prompts[2] = fmt.Sprintf("A photo of a male person with this beard style: %s", advice.BeardStyle)
	}

	images := bestEffortImages(ctx, prompts, c.GenerateImage)
	advice.DressingStyleImage = images[0]
	advice.HairstyleImage = images[1]
	advice.BeardStyleImage = images[2]

	return &advice, nil
}

const motivationFallback = "Keep up the great work! Every step counts on your journey to a better you."

// GenerateMotivation writes a short adaptive message from the user's stats
// and vibe. It never fails; on error the canned encouragement comes back.
func (c *Client) GenerateMotivation(ctx context.Context, stats models.GamificationStats, habits []models.Habit, vibe *models.DailyVibe) string {
	completed := 0
	for _, h := range habits {
		if h.Completed {
			completed++
		}
	}

	prompt := fmt.Sprintf(`A user is on their health journey. Here are their current stats:
- Level: %d
- XP: %d
- Current Streak: %d days
- Habits completed today: %d out of %d.`, stats.Level, stats.XP, stats.Streak, completed, len(habits))

	if vibe != nil {
		prompt += fmt.Sprintf(`
Today, they are feeling:
- Sleep Quality: %s
- Energy Level: %s
- Mood: %s`, vibe.Sleep, vibe.Energy, vibe.Mood)
	}

	prompt += `

Write a short, encouraging, and adaptive message for them. Take their vibe into account.
- If they completed all habits, congratulate them enthusiastically and mention their streak.
- If they completed most but not all, praise their effort and gently encourage them for tomorrow.
- If they completed few or no habits, be supportive and motivational, reminding them that every day is a new start, without being discouraging.
- If their vibe is low (poor sleep, low energy), be extra supportive and gentle.
- If their vibe is high, be more energetic and challenging.`

	resp, err := c.client.Models.GenerateContent(ctx, TextModel, genai.Text(prompt), nil)
	if err != nil {
		return motivationFallback
	}
	return resp.Text()
}
