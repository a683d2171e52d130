package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/auralabs/aura-backend/internal/ai"
	"github.com/auralabs/aura-backend/internal/services"
	"github.com/auralabs/aura-backend/internal/store"
)

// Package-level dependencies, wired once at startup (see cmd/server).
var (
	Repo        store.UserRepository
	Sessions    services.SessionStore
	AuthService *services.Auth
	AI          *ai.Client
	PlanCache   *services.PlanCache
	Uploads     *services.CloudinaryService
)

// timeNow is swapped in tests to pin the calendar day.
var timeNow = time.Now

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func respondData(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, Response{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Success: false, Message: message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAuth):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrConflict):
		respondError(w, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, services.ErrGeneration):
		respondError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "Account not found")
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
