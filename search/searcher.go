package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/resumatch/ai"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/enhance"
	"github.com/poiesic/resumatch/storage"
)

const (
	// DefaultSimilarityThreshold excludes weak matches; results scoring
	// strictly below it are never returned.
	DefaultSimilarityThreshold float32 = 0.60

	// DefaultLimit caps the result count when the caller doesn't choose one.
	DefaultLimit = 10
)

// Searcher runs semantic similarity searches over indexed candidate records.
// Queries pass through the active enhancement strategy before embedding.
type Searcher struct {
	candidates storage.CandidateRepository
	manifests  storage.ManifestRepository
	embedder   ai.Embedder
	model      string
	dimensions int
	enhancer   *enhance.Service
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithEnhancement sets the query enhancement service.
// Default is a service with the pass-through strategy active.
func WithEnhancement(service *enhance.Service) Option {
	return func(s *Searcher) error {
		if service != nil {
			s.enhancer = service
		}
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	candidates storage.CandidateRepository,
	manifests storage.ManifestRepository,
	provider ai.Provider,
	opts ...Option,
) (*Searcher, error) {
	if candidates == nil {
		return nil, ErrCandidateRepositoryRequired
	}
	if manifests == nil {
		return nil, ErrManifestRepositoryRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	s := &Searcher{
		candidates: candidates,
		manifests:  manifests,
		embedder:   provider.Embedder(),
		model:      provider.Model(),
		dimensions: provider.Dimensions(),
		enhancer:   enhance.NewService(),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Enhancement returns the enhancement service, for runtime strategy changes.
func (s *Searcher) Enhancement() *enhance.Service {
	return s.enhancer
}

// Search finds indexed candidates similar to the query.
// Returns up to query.Limit results ordered by similarity descending.
func (s *Searcher) Search(ctx context.Context, query *core.SearchQuery) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor runs a search with monitoring callbacks at each stage.
//
// Storage and embedding failures surface as errors; they are never disguised
// as an empty result set. An index that doesn't exist yet (no manifest) is
// genuinely empty and returns no results.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query *core.SearchQuery, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateSearchQuery(query); err != nil {
		return nil, err
	}

	monitor.Start(query.Text)

	manifest, err := s.manifests.LoadManifest(ctx)
	if err != nil {
		s.logger.Error("error loading index manifest", "err", err)
		return nil, err
	}
	if manifest == nil {
		// Nothing has been indexed yet.
		monitor.Finish(nil)
		return []*core.SearchResult{}, nil
	}
	if manifest.EmbeddingModel != s.model || manifest.Dimensions != s.dimensions {
		return nil, fmt.Errorf("%w: index built with %s (%d dims), query provider is %s (%d dims)",
			core.ErrEmbeddingModelMismatch,
			manifest.EmbeddingModel, manifest.Dimensions, s.model, s.dimensions)
	}

	// Enhancement never fails a search; on any failure the original query
	// text is used as-is.
	query.EnhancedText = s.enhancer.Enhance(ctx, query.Text)
	monitor.AfterEnhancement(s.enhancer.ActiveStrategy(), query.EnhancedText)

	embedding, err := s.embedder.EmbedText(ctx, query.EnhancedText)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query.Text, "err", err)
		return nil, err
	}
	vector := core.NormalizeVector(embedding)
	monitor.AfterEmbedding(len(vector))

	results, err := s.candidates.FindSimilar(ctx, vector,
		query.CategoryFilter, query.SimilarityThreshold, query.Limit)
	if err != nil {
		s.logger.Error("error querying for similar candidates", "err", err)
		return nil, err
	}

	monitor.Finish(results)
	return results, nil
}
