package ai

import (
	"context"
	"encoding/base64"
	"log"

	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

// ImageFunc renders one illustrative image for a prompt and returns it as
// base64 jpeg, or "" when it could not be generated.
type ImageFunc func(ctx context.Context, prompt string) string

// GenerateImage renders a single illustrative image. Failures are logged
// and swallowed; the empty string means "no image", never an error.
func (c *Client) GenerateImage(ctx context.Context, prompt string) string {
	resp, err := c.client.Models.GenerateImages(ctx, ImageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    "1:1",
	})
	if err != nil {
		log.Printf("image generation failed: %v", err)
		return ""
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(resp.GeneratedImages[0].Image.ImageBytes)
}

// bestEffortImages fans out one image generation per prompt and joins the
// results in prompt order. An empty prompt or a failed generation yields ""
// at that position; the fan-out itself never fails.
func bestEffortImages(ctx context.Context, prompts []string, gen ImageFunc) []string {
	images := make([]string, len(prompts))

	g, ctx := errgroup.WithContext(ctx)
	for i, prompt := range prompts {
		if prompt == "" {
			continue
		}
		g.Go(func() error {
			images[i] = gen(ctx, prompt)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; absence is the failure mode
	return images
}
