package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/auralabs/aura-backend/internal/middleware"
	"github.com/auralabs/aura-backend/internal/models"
)

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS for WebSocket is handled at the HTTP layer already.
		return true
	},
}

// ChatClientMessage represents messages coming from the frontend over WebSocket.
type ChatClientMessage struct {
	Type    string `json:"type"` // "message", "ping"
	Message string `json:"message,omitempty"`
}

// ChatServerMessage is what the server pushes back.
type ChatServerMessage struct {
	Type  string `json:"type"` // "reply", "pong", "error"
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// ChatWebSocket handles real-time coach chat over WebSocket.
// Authentication uses the session token, via the Authorization header or a
// `token` query parameter for browser clients.
func ChatWebSocket(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	if token == "" {
		http.Error(w, "missing session token", http.StatusUnauthorized)
		return
	}

	email, ok, err := Sessions.Resolve(r.Context(), token)
	if err != nil || !ok {
		http.Error(w, "invalid session token", http.StatusUnauthorized)
		return
	}

	if AI == nil {
		http.Error(w, "AI features are not configured", http.StatusServiceUnavailable)
		return
	}

	conn, err := chatUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.SetReadLimit(8 << 10)
	conn.SetReadDeadline(time.Now().Add(10 * time.Minute))

	for {
		var msg ChatClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(10 * time.Minute))

		switch msg.Type {
		case "ping":
			conn.WriteJSON(ChatServerMessage{Type: "pong"})

		case "message":
			text := strings.TrimSpace(msg.Message)
			if text == "" {
				conn.WriteJSON(ChatServerMessage{Type: "error", Error: "message cannot be empty"})
				continue
			}

			reply, err := coachReply(r, email, text)
			if err != nil {
				log.Printf("ws chat for %s: %v", email, err)
				conn.WriteJSON(ChatServerMessage{Type: "error", Error: "failed to process message"})
				continue
			}
			conn.WriteJSON(ChatServerMessage{Type: "reply", Reply: reply})
		}
	}
}

// coachReply runs the same persist-ask-persist flow as the HTTP endpoint.
func coachReply(r *http.Request, email, text string) (string, error) {
	ctx := r.Context()

	rec, err := Repo.Load(ctx, email)
	if err != nil {
		return "", err
	}

	history := append([]models.ChatMessage(nil), rec.ChatHistory...)
	rec.ChatHistory = append(rec.ChatHistory, models.ChatMessage{Role: models.RoleUser, Content: text})
	rec.ChatVersion++
	version := rec.ChatVersion
	if err := Repo.Save(ctx, rec); err != nil {
		return "", err
	}

	reply := AI.Chat(ctx, rec.Profile, history, text)

	fresh, err := Repo.Load(ctx, email)
	if err == nil && fresh.ChatVersion == version {
		fresh.ChatHistory = append(fresh.ChatHistory, models.ChatMessage{Role: models.RoleModel, Content: reply})
		fresh.ChatVersion++
		if err := Repo.Save(ctx, fresh); err != nil {
			log.Printf("saving ws chat reply: %v", err)
		}
	}
	return reply, nil
}
