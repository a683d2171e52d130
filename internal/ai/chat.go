package ai

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/auralabs/aura-backend/internal/models"
)

const chatFallback = "I'm sorry, I'm having trouble connecting right now. Please try again in a moment."

// Chat continues a coaching conversation. The full prior history is replayed
// on every call so the model keeps context across requests. It never fails;
// an apologetic fallback stands in for any model error.
func (c *Client) Chat(ctx context.Context, profile models.UserProfile, history []models.ChatMessage, message string) string {
	system := fmt.Sprintf(`You are Aura, a personal AI lifestyle coach. You are friendly, supportive, and highly knowledgeable about fitness, nutrition, and well-being.
You are talking to %s, a %d-year-old %s. Their primary goal is %q.
Use this information to provide personalized, empathetic, and motivational advice. Keep your responses concise, conversational, and helpful.`, profile.Name, profile.Age, profile.Gender, profile.Goal)

	prior := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := genai.Role(genai.RoleUser)
		if msg.Role == models.RoleModel {
			role = genai.RoleModel
		}
		prior = append(prior, genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(msg.Content)}, role))
	}

	chat, err := c.client.Chats.Create(ctx, TextModel, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(system)}, genai.RoleUser),
	}, prior)
	if err != nil {
		log.Printf("chat session create failed: %v", err)
		return chatFallback
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		log.Printf("chat send failed: %v", err)
		return chatFallback
	}
	return resp.Text()
}
