package enhance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiEnhancer enhances queries through the Google Gemini API.
type GeminiEnhancer struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// GeminiConfig configures the Gemini enhancement strategy.
type GeminiConfig struct {
	// APIKey is the Gemini API key. Required.
	APIKey string

	// Model is the generation model identifier. Empty selects a default.
	Model string
}

// NewGeminiEnhancer creates the Gemini-backed enhancement strategy.
func NewGeminiEnhancer(ctx context.Context, config GeminiConfig) (*GeminiEnhancer, error) {
	apiKey := strings.TrimSpace(config.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini api key required", ErrMissingCredentials)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiEnhancer{
		client: client,
		model:  model,
		logger: slog.Default().With("component", "gemini-enhancer"),
	}, nil
}

// Enhance asks Gemini to rewrite the query for resume retrieval.
func (e *GeminiEnhancer) Enhance(ctx context.Context, query string) (string, error) {
	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(buildPrompt(query)), nil)
	if err != nil {
		e.logger.Error("failed to generate enhanced query", "err", err)
		return "", fmt.Errorf("%w: %v", ErrEnhancementFailed, err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString(" ")
			}
			builder.WriteString(text)
		}
	}

	enhanced := strings.TrimSpace(builder.String())
	if enhanced == "" {
		return "", fmt.Errorf("%w: empty response", ErrEnhancementFailed)
	}
	return enhanced, nil
}

// Strategy returns StrategyGemini.
func (e *GeminiEnhancer) Strategy() Strategy {
	return StrategyGemini
}
