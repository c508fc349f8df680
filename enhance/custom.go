package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// CustomEnhancer enhances queries through a user-supplied HTTP endpoint.
// The endpoint receives {"query": "..."} and responds with
// {"enhanced_query": "..."}.
type CustomEnhancer struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewCustomEnhancer creates the custom-endpoint enhancement strategy.
func NewCustomEnhancer(endpoint string) (*CustomEnhancer, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("%w: custom endpoint url required", ErrMissingCredentials)
	}

	return &CustomEnhancer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   slog.Default().With("component", "custom-enhancer"),
	}, nil
}

type customRequest struct {
	Query string `json:"query"`
}

type customResponse struct {
	EnhancedQuery string `json:"enhanced_query"`
}

// Enhance posts the query to the configured endpoint.
func (e *CustomEnhancer) Enhance(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(customRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEnhancementFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEnhancementFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Error("custom enhancement request failed", "err", err)
		return "", fmt.Errorf("%w: %v", ErrEnhancementFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: endpoint returned status %d", ErrEnhancementFailed, resp.StatusCode)
	}

	var decoded customResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", ErrEnhancementFailed, err)
	}

	enhanced := strings.TrimSpace(decoded.EnhancedQuery)
	if enhanced == "" {
		return "", fmt.Errorf("%w: empty enhanced_query", ErrEnhancementFailed)
	}
	return enhanced, nil
}

// Strategy returns StrategyCustom.
func (e *CustomEnhancer) Strategy() Strategy {
	return StrategyCustom
}
