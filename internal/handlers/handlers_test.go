package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralabs/aura-backend/internal/middleware"
	"github.com/auralabs/aura-backend/internal/models"
	"github.com/auralabs/aura-backend/internal/services"
	"github.com/auralabs/aura-backend/internal/store"
)

func setupTestServer(t *testing.T, day time.Time) (*chi.Mux, string) {
	t.Helper()

	repo := store.NewMemoryRepository()
	sessions := services.NewMemorySessions()

	Repo = repo
	Sessions = sessions
	AuthService = services.NewAuth(repo, sessions)
	AuthService.Now = func() time.Time { return day }
	PlanCache = services.NewPlanCache(nil)
	AI = nil
	Uploads = nil
	timeNow = func() time.Time { return day }
	t.Cleanup(func() { timeNow = time.Now })

	w := 80.0
	tw := 70.0
	_, token, err := AuthService.SignUp(context.Background(), services.SignUpRequest{
		Name:          "Asha",
		Email:         "asha@gmail.com",
		Password:      "secret1!",
		Age:           29,
		Gender:        models.GenderFemale,
		Goal:          models.GoalWeightLoss,
		CurrentWeight: &w,
		TargetWeight:  &tw,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions))
		r.Get("/api/tracker", GetTracker)
		r.Post("/api/tracker/habits/toggle", ToggleHabit)
		r.Put("/api/tracker/water", UpdateWater)
		r.Put("/api/tracker/vibe", UpdateVibe)
	})
	return r, token
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func recordFromResponse(t *testing.T, resp Response) map[string]interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data must be an object")
	return data
}

func TestTrackerRequiresAuth(t *testing.T) {
	r, _ := setupTestServer(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	rec, _ := doJSON(t, r, http.MethodGet, "/api/tracker", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, r, http.MethodGet, "/api/tracker", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestToggleHabitAwardsXP(t *testing.T) {
	r, token := setupTestServer(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	rec, resp := doJSON(t, r, http.MethodGet, "/api/tracker", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := recordFromResponse(t, resp)
	habits := data["habits"].([]interface{})
	first := habits[0].(map[string]interface{})
	id := int(first["id"].(float64))
	xp := int(first["xp"].(float64))

	rec, resp = doJSON(t, r, http.MethodPost, "/api/tracker/habits/toggle", token, ToggleHabitRequest{ID: id, Completed: true})
	require.Equal(t, http.StatusOK, rec.Code)
	data = recordFromResponse(t, resp)
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(xp), stats["xp"])

	// Untoggle brings it back to zero
	rec, resp = doJSON(t, r, http.MethodPost, "/api/tracker/habits/toggle", token, ToggleHabitRequest{ID: id, Completed: false})
	require.Equal(t, http.StatusOK, rec.Code)
	data = recordFromResponse(t, resp)
	stats = data["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["xp"])
}

func TestToggleUnknownHabit(t *testing.T) {
	r, token := setupTestServer(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	rec, resp := doJSON(t, r, http.MethodPost, "/api/tracker/habits/toggle", token, ToggleHabitRequest{ID: 9999, Completed: true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}

func TestTrackerRunsRolloverOnLoad(t *testing.T) {
	r, token := setupTestServer(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	// Complete every habit today.
	_, resp := doJSON(t, r, http.MethodGet, "/api/tracker", token, nil)
	data := recordFromResponse(t, resp)
	for _, h := range data["habits"].([]interface{}) {
		id := int(h.(map[string]interface{})["id"].(float64))
		rec, _ := doJSON(t, r, http.MethodPost, "/api/tracker/habits/toggle", token, ToggleHabitRequest{ID: id, Completed: true})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Next calendar day: streak survives, flags reset.
	timeNow = func() time.Time { return time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC) }
	rec, resp := doJSON(t, r, http.MethodGet, "/api/tracker", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = recordFromResponse(t, resp)

	assert.Equal(t, "2024-03-11", data["last_date"])
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["streak"], "streak earned by completing all habits survives a consecutive day")
	for _, h := range data["habits"].([]interface{}) {
		assert.False(t, h.(map[string]interface{})["completed"].(bool))
	}

	// Two skipped days: streak resets to zero.
	timeNow = func() time.Time { return time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC) }
	_, resp = doJSON(t, r, http.MethodGet, "/api/tracker", token, nil)
	data = recordFromResponse(t, resp)
	stats = data["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["streak"])
}

func TestUpdateWaterAndVibe(t *testing.T) {
	r, token := setupTestServer(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	rec, resp := doJSON(t, r, http.MethodPut, "/api/tracker/water", token, UpdateWaterRequest{Count: 5})
	require.Equal(t, http.StatusOK, rec.Code)
	data := recordFromResponse(t, resp)
	assert.Equal(t, float64(5), data["water_count"])

	rec, _ = doJSON(t, r, http.MethodPut, "/api/tracker/water", token, UpdateWaterRequest{Count: -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp = doJSON(t, r, http.MethodPut, "/api/tracker/vibe", token, models.DailyVibe{
		Sleep:  models.SleepGood,
		Energy: models.EnergyHigh,
		Mood:   models.MoodHappy,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	data = recordFromResponse(t, resp)
	vibe := data["daily_vibe"].(map[string]interface{})
	assert.Equal(t, "Good", vibe["sleep"])

	rec, _ = doJSON(t, r, http.MethodPut, "/api/tracker/vibe", token, map[string]string{"sleep": "Terrible", "energy": "High", "mood": "Happy"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
