package enhance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIEnhancer enhances queries through an OpenAI-compatible chat API.
type OpenAIEnhancer struct {
	client llms.Model
	logger *slog.Logger
}

// OpenAIConfig configures the OpenAI enhancement strategy.
type OpenAIConfig struct {
	// BaseURL is the chat API base URL. Empty selects the public OpenAI API.
	BaseURL string

	// Token is the API key. Required.
	Token string

	// Model is the chat model identifier, e.g. "gpt-4o-mini".
	Model string
}

// NewOpenAIEnhancer creates the OpenAI-backed enhancement strategy.
func NewOpenAIEnhancer(config OpenAIConfig) (*OpenAIEnhancer, error) {
	if config.Token == "" {
		return nil, fmt.Errorf("%w: openai token required", ErrMissingCredentials)
	}
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}

	opts := []openai.Option{
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	}
	if config.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(config.BaseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}

	return &OpenAIEnhancer{
		client: client,
		logger: slog.Default().With("component", "openai-enhancer"),
	}, nil
}

// Enhance asks the chat model to rewrite the query for resume retrieval.
func (e *OpenAIEnhancer) Enhance(ctx context.Context, query string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildPrompt(query)),
			},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.3), llms.WithMaxTokens(150))
	if err != nil {
		e.logger.Error("failed to generate enhanced query", "err", err)
		return "", fmt.Errorf("%w: %v", ErrEnhancementFailed, err)
	}

	if len(response.Choices) < 1 {
		return "", fmt.Errorf("%w: no choices returned", ErrEnhancementFailed)
	}

	enhanced := strings.TrimSpace(response.Choices[0].Content)
	if enhanced == "" {
		return "", fmt.Errorf("%w: empty response", ErrEnhancementFailed)
	}
	return enhanced, nil
}

// Strategy returns StrategyOpenAI.
func (e *OpenAIEnhancer) Strategy() Strategy {
	return StrategyOpenAI
}
