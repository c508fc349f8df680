package mock

import "github.com/poiesic/resumatch/ai"

// MockProvider is a test double for ai.Provider backed by a MockEmbedder.
type MockProvider struct {
	MockEmbedder *MockEmbedder
	ModelName    string
}

// NewMockProvider creates a provider around a fresh MockEmbedder.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		MockEmbedder: NewMockEmbedder(),
		ModelName:    "mock-embedder",
	}
}

// Embedder returns the mock embedding service.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.MockEmbedder
}

// Model returns the configured mock model identifier.
func (p *MockProvider) Model() string {
	return p.ModelName
}

// Dimensions returns the vector length the mock produces.
func (p *MockProvider) Dimensions() int {
	return p.MockEmbedder.dimensions()
}

// Close is a no-op.
func (p *MockProvider) Close() error {
	return nil
}
