package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/auralabs/aura-backend/internal/middleware"
	"github.com/auralabs/aura-backend/internal/models"
)

// ChatRequest carries one user message to the coach.
type ChatRequest struct {
	Message string `json:"message"`
}

// PostChat handles POST /api/chat. The user's message is persisted before
// the model call; the reply is persisted only if the transcript has not
// moved on in the meantime, so a slow reply can never clobber newer
// messages.
func PostChat(w http.ResponseWriter, r *http.Request) {
	if AI == nil {
		respondError(w, http.StatusServiceUnavailable, "AI features are not configured")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	rec, ok := loadCurrentDay(w, r)
	if !ok {
		return
	}

	history := append([]models.ChatMessage(nil), rec.ChatHistory...)

	rec.ChatHistory = append(rec.ChatHistory, models.ChatMessage{Role: models.RoleUser, Content: req.Message})
	rec.ChatVersion++
	version := rec.ChatVersion
	if err := Repo.Save(r.Context(), rec); err != nil {
		respondServiceError(w, err)
		return
	}

	reply := AI.Chat(r.Context(), rec.Profile, history, req.Message)

	// Re-read before persisting the reply; another request may have
	// advanced the transcript while the model was thinking.
	fresh, err := Repo.Load(r.Context(), rec.Profile.Email)
	if err == nil && fresh.ChatVersion == version {
		fresh.ChatHistory = append(fresh.ChatHistory, models.ChatMessage{Role: models.RoleModel, Content: reply})
		fresh.ChatVersion++
		if err := Repo.Save(r.Context(), fresh); err != nil {
			log.Printf("saving chat reply: %v", err)
		}
	} else if err == nil {
		log.Printf("discarding stale chat reply for %s", rec.Profile.Email)
	}

	respondData(w, map[string]string{"reply": reply})
}

// GetChatHistory handles GET /api/chat/history.
func GetChatHistory(w http.ResponseWriter, r *http.Request) {
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

	history := rec.ChatHistory
	if history == nil {
		history = []models.ChatMessage{}
	}
	respondData(w, map[string]interface{}{"history": history})
}
