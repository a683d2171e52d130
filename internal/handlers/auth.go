package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/auralabs/aura-backend/internal/middleware"
	"github.com/auralabs/aura-backend/internal/models"
	"github.com/auralabs/aura-backend/internal/services"
)

// SigninRequest carries the sign-in credentials.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload strips storage-only fields before a record leaves the API.
func userPayload(rec *models.UserRecord) map[string]interface{} {
	return map[string]interface{}{
		"profile":     rec.Profile,
		"habits":      rec.Habits,
		"stats":       rec.Stats,
		"water_count": rec.WaterCount,
		"last_date":   rec.LastDate,
		"daily_vibe":  rec.DailyVibe,
	}
}

// Signup handles POST /api/auth/signup.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req services.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, token, err := AuthService.SignUp(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Account created",
		Data: map[string]interface{}{
			"token": token,
			"user":  userPayload(rec),
		},
	})
}

// Signin handles POST /api/auth/signin.
func Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, token, err := AuthService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, map[string]interface{}{
		"token": token,
		"user":  userPayload(rec),
	})
}

// Signout handles POST /api/auth/signout. Always succeeds; an unknown
// token is already signed out.
func Signout(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if err := AuthService.SignOut(r.Context(), token); err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, "Signed out")
}

// Me handles GET /api/auth/me for the signed-in user.
func Me(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	rec, err := Repo.Load(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, map[string]interface{}{"user": userPayload(rec)})
}
