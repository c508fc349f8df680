package enhance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomEnhancer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req customRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		json.NewEncoder(w).Encode(customResponse{
			EnhancedQuery: req.Query + " with synonyms",
		})
	}))
	defer server.Close()

	enhancer, err := NewCustomEnhancer(server.URL)
	require.NoError(t, err)
	assert.Equal(t, StrategyCustom, enhancer.Strategy())

	got, err := enhancer.Enhance(context.Background(), "java developer")
	require.NoError(t, err)
	assert.Equal(t, "java developer with synonyms", got)
}

func TestCustomEnhancerNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	enhancer, err := NewCustomEnhancer(server.URL)
	require.NoError(t, err)

	_, err = enhancer.Enhance(context.Background(), "java developer")
	assert.ErrorIs(t, err, ErrEnhancementFailed)
}

func TestCustomEnhancerMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	enhancer, err := NewCustomEnhancer(server.URL)
	require.NoError(t, err)

	_, err = enhancer.Enhance(context.Background(), "java developer")
	assert.ErrorIs(t, err, ErrEnhancementFailed)
}

func TestCustomEnhancerEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(customResponse{EnhancedQuery: ""})
	}))
	defer server.Close()

	enhancer, err := NewCustomEnhancer(server.URL)
	require.NoError(t, err)

	_, err = enhancer.Enhance(context.Background(), "java developer")
	assert.ErrorIs(t, err, ErrEnhancementFailed)
}

func TestCustomEnhancerRequiresEndpoint(t *testing.T) {
	_, err := NewCustomEnhancer("  ")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestCustomEnhancerFallbackThroughService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	enhancer, err := NewCustomEnhancer(server.URL)
	require.NoError(t, err)

	svc := NewService()
	svc.SetStrategy(enhancer)

	// Endpoint failure must surface the original query, not an error.
	assert.Equal(t, "sre with gcp", svc.Enhance(context.Background(), "sre with gcp"))
}
