package handlers

import (
	"net/http"

	"github.com/auralabs/aura-backend/internal/models"
)

// DietPlan handles GET /api/plans/diet. Plans are cached per user and vibe
// for the rest of the day; ?force=true regenerates.
func DietPlan(w http.ResponseWriter, r *http.Request) {
	servePlan(w, r, "diet", func(rec *models.UserRecord) (interface{}, error) {
		return AI.GenerateDietPlan(r.Context(), rec.Profile, rec.DailyVibe)
	}, &models.DietPlan{})
}

// WorkoutPlan handles GET /api/plans/workout.
func WorkoutPlan(w http.ResponseWriter, r *http.Request) {
	servePlan(w, r, "workout", func(rec *models.UserRecord) (interface{}, error) {
		return AI.GenerateWorkoutPlan(r.Context(), rec.Profile, rec.DailyVibe)
	}, &models.WorkoutPlan{})
}

func servePlan(w http.ResponseWriter, r *http.Request, kind string, generate func(*models.UserRecord) (interface{}, error), cached interface{}) {
	if AI == nil {
		respondError(w, http.StatusServiceUnavailable, "AI features are not configured")
		return
	}

	rec, ok := loadCurrentDay(w, r)
	if !ok {
		return
	}

	key := PlanCache.Key(rec.Profile.Email, kind, rec.DailyVibe)
	force := r.URL.Query().Get("force") == "true"

	if force {
		PlanCache.Delete(r.Context(), key)
	} else {
		hit, err := PlanCache.Get(r.Context(), key, cached)
		if err == nil && hit {
			respondData(w, cached)
			return
		}
	}

	plan, err := generate(rec)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	PlanCache.Set(r.Context(), key, plan)
	respondData(w, plan)
}

// StyleAdvice handles POST /api/style with a multipart "image" field.
func StyleAdvice(w http.ResponseWriter, r *http.Request) {
	if AI == nil {
		respondError(w, http.StatusServiceUnavailable, "AI features are not configured")
		return
	}

	rec, ok := loadCurrentDay(w, r)
	if !ok {
		return
	}

	imageBytes, mimeType, ok := readImageField(w, r)
	if !ok {
		return
	}

	advice, err := AI.GenerateStyleAdvice(r.Context(), imageBytes, mimeType, rec.Profile)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, advice)
}
