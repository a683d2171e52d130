package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/auralabs/aura-backend/internal/game"
	"github.com/auralabs/aura-backend/internal/middleware"
	"github.com/auralabs/aura-backend/internal/models"
)

// ToggleHabitRequest flips one habit's completion state.
type ToggleHabitRequest struct {
	ID        int  `json:"id"`
	Completed bool `json:"completed"`
}

// UpdateWaterRequest sets today's glass count.
type UpdateWaterRequest struct {
	Count int `json:"count"`
}

// loadCurrentDay fetches the caller's record with migration and day
// rollover already applied and persisted. Every tracker endpoint goes
// through here so no stale day is ever observable.
func loadCurrentDay(w http.ResponseWriter, r *http.Request) (*models.UserRecord, bool) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	rec, err := Repo.Load(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return nil, false
	}

	migrated := game.Migrate(rec)
	rolled := game.ReconcileDay(rec, game.Today(timeNow()))
	if migrated || rolled {
		if err := Repo.Save(r.Context(), rec); err != nil {
			respondServiceError(w, err)
			return nil, false
		}
	}
	return rec, true
}

// GetTracker handles GET /api/tracker.
func GetTracker(w http.ResponseWriter, r *http.Request) {
	rec, ok := loadCurrentDay(w, r)
	if !ok {
		return
	}
	respondData(w, userPayload(rec))
}

// ToggleHabit handles POST /api/tracker/habits/toggle.
func ToggleHabit(w http.ResponseWriter, r *http.Request) {
	var req ToggleHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, ok := loadCurrentDay(w, r)
	if !ok {
		return
	}

	if err := game.ToggleHabit(rec, req.ID, req.Completed); err != nil {
		if errors.Is(err, game.ErrHabitNotFound) {
			respondError(w, http.StatusNotFound, "Habit not found")
			return
		}
		respondServiceError(w, err)
		return
	}

	if err := Repo.Save(r.Context(), rec); err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, userPayload(rec))
}

// UpdateWater handles PUT /api/tracker/water.
func UpdateWater(w http.ResponseWriter, r *http.Request) {
	var req UpdateWaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Count < 0 {
		respondError(w, http.StatusBadRequest, "Water count cannot be negative")
		return
	}

	rec, ok := loadCurrentDay(w, r)
	if !ok {
		return
	}

	rec.WaterCount = req.Count
	if err := Repo.Save(r.Context(), rec); err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, userPayload(rec))
}

// UpdateVibe handles PUT /api/tracker/vibe.
func UpdateVibe(w http.ResponseWriter, r *http.Request) {
	var vibe models.DailyVibe
	if err := json.NewDecoder(r.Body).Decode(&vibe); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !vibe.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid sleep, energy, or mood value")
		return
	}

	rec, ok := loadCurrentDay(w, r)
	if !ok {
		return
	}

	rec.DailyVibe = &vibe
	if err := Repo.Save(r.Context(), rec); err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, userPayload(rec))
}

// Motivation handles GET /api/tracker/motivation. The message always comes
// back; model failures degrade to a canned encouragement inside the client.
func Motivation(w http.ResponseWriter, r *http.Request) {
	if AI == nil {
		respondError(w, http.StatusServiceUnavailable, "AI features are not configured")
		return
	}

	rec, ok := loadCurrentDay(w, r)
	if !ok {
		return
	}

	message := AI.GenerateMotivation(r.Context(), rec.Stats, rec.Habits, rec.DailyVibe)
	respondData(w, map[string]string{"message": message})
}
