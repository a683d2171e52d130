// Package ai wraps the Gemini API behind typed, schema-constrained calls.
// Plan and scan generation can fail (retryable by the caller); nutrition
// lookups, chat and illustrative images degrade to fallbacks instead of
// failing, so a single bad sub-call never blocks the feature around it.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/auralabs/aura-backend/internal/services"
)

const (
	// TextModel answers every structured-content and chat request.
	TextModel = "gemini-2.5-flash"
	// ImageModel renders the illustrative meal/style images.
	ImageModel = "imagen-3.0-generate-002"
)

type Client struct {
	client *genai.Client
}

func New(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Client{client: client}, nil
}

// generateJSON sends contents with a response schema and decodes the JSON
// reply into out. Any transport or decode failure becomes ErrGeneration.
func (c *Client) generateJSON(ctx context.Context, contents []*genai.Content, schema *genai.Schema, out interface{}) error {
	resp, err := c.client.Models.GenerateContent(ctx, TextModel, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", services.ErrGeneration, err)
	}

	if err := json.Unmarshal([]byte(resp.Text()), out); err != nil {
		return fmt.Errorf("%w: unparsable model output: %v", services.ErrGeneration, err)
	}
	return nil
}
