package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/resumatch/ai/mock"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/enhance"
	"github.com/poiesic/resumatch/storage"
	"github.com/poiesic/resumatch/storage/badger"
)

// failingEnhancer always errors, forcing the service fallback path.
type failingEnhancer struct{}

func (f *failingEnhancer) Enhance(ctx context.Context, query string) (string, error) {
	return "", errors.New("enhancement backend down")
}

func (f *failingEnhancer) Strategy() enhance.Strategy { return enhance.StrategyCustom }

// rewritingEnhancer returns a fixed expansion for any query.
type rewritingEnhancer struct {
	output string
}

func (r *rewritingEnhancer) Enhance(ctx context.Context, query string) (string, error) {
	return r.output, nil
}

func (r *rewritingEnhancer) Strategy() enhance.Strategy { return enhance.StrategyLocal }

type searchEnv struct {
	searcher   *Searcher
	candidates storage.CandidateRepository
	manifests  storage.ManifestRepository
	provider   *mock.MockProvider
	backend    *badger.Backend
}

// newSearchEnv builds a searcher over an in-memory store using 3-dimensional
// vectors so similarity geometry is easy to reason about.
func newSearchEnv(t *testing.T, opts ...Option) *searchEnv {
	t.Helper()

	candidates, _, manifests, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	provider := mock.NewMockProvider()
	provider.MockEmbedder.Dim = 3

	searcher, err := NewSearcher(candidates, manifests, provider, opts...)
	require.NoError(t, err)

	return &searchEnv{
		searcher:   searcher,
		candidates: candidates,
		manifests:  manifests,
		provider:   provider,
		backend:    backend,
	}
}

func (e *searchEnv) saveManifest(t *testing.T) {
	t.Helper()
	require.NoError(t, e.manifests.SaveManifest(context.Background(), &core.IndexManifest{
		EmbeddingModel: e.provider.Model(),
		Dimensions:     e.provider.Dimensions(),
	}))
}

func (e *searchEnv) seedIndexed(t *testing.T, id core.ID, vector []float32, category core.JobCategory, indexedAt time.Time) {
	t.Helper()
	record := &core.CandidateRecord{
		Id:         id,
		SourceName: "seeded.txt",
		Format:     "txt",
		RawText:    "seeded resume text",
		Fields:     core.CandidateFields{Category: category},
		Vector:     core.NormalizeVector(vector),
		Status:     core.StatusIndexed,
		IndexedAt:  indexedAt,
	}
	_, err := e.candidates.UpsertCandidates(context.Background(), record)
	require.NoError(t, err)
}

func (e *searchEnv) fixQueryVector(vector []float32) {
	e.provider.MockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return vector, nil
	}
}

func TestNewSearcherValidation(t *testing.T) {
	candidates, _, manifests, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	provider := mock.NewMockProvider()

	_, err = NewSearcher(nil, manifests, provider)
	assert.ErrorIs(t, err, ErrCandidateRepositoryRequired)

	_, err = NewSearcher(candidates, nil, provider)
	assert.ErrorIs(t, err, ErrManifestRepositoryRequired)

	_, err = NewSearcher(candidates, manifests, nil)
	assert.ErrorIs(t, err, ErrProviderRequired)
}

func TestSearchValidatesQuery(t *testing.T) {
	env := newSearchEnv(t)
	ctx := context.Background()

	_, err := env.searcher.Search(ctx, nil)
	assert.ErrorIs(t, err, core.ErrInvalidQuery)

	_, err = env.searcher.Search(ctx, &core.SearchQuery{Text: "", Limit: 10})
	assert.ErrorIs(t, err, core.ErrInvalidQuery)

	_, err = env.searcher.Search(ctx, &core.SearchQuery{Text: "golang", Limit: 0})
	assert.ErrorIs(t, err, core.ErrInvalidQuery)

	_, err = env.searcher.Search(ctx, &core.SearchQuery{Text: "golang", Limit: 10, SimilarityThreshold: 1.5})
	assert.ErrorIs(t, err, core.ErrInvalidQuery)
}

func TestSearchEmptyIndex(t *testing.T) {
	env := newSearchEnv(t)

	results, err := env.searcher.Search(context.Background(), &core.SearchQuery{
		Text:  "python developer",
		Limit: DefaultLimit,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchModelMismatch(t *testing.T) {
	env := newSearchEnv(t)
	require.NoError(t, env.manifests.SaveManifest(context.Background(), &core.IndexManifest{
		EmbeddingModel: "other-model",
		Dimensions:     1536,
	}))

	_, err := env.searcher.Search(context.Background(), &core.SearchQuery{
		Text:  "python developer",
		Limit: DefaultLimit,
	})
	assert.ErrorIs(t, err, core.ErrEmbeddingModelMismatch)
}

func TestSearchRankingAndThreshold(t *testing.T) {
	env := newSearchEnv(t)
	env.saveManifest(t)

	now := time.Now().UTC()
	env.seedIndexed(t, 1, []float32{1, 0, 0}, core.CategoryBackend, now)
	env.seedIndexed(t, 2, []float32{0.8, 0.6, 0}, core.CategoryQA, now)
	env.seedIndexed(t, 3, []float32{0, 1, 0}, core.CategoryBackend, now)

	env.fixQueryVector([]float32{1, 0, 0})

	results, err := env.searcher.Search(context.Background(), &core.SearchQuery{
		Text:                "backend golang engineer",
		SimilarityThreshold: 0.5,
		Limit:               DefaultLimit,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, core.ID(1), results[0].Record.Id)
	assert.Equal(t, core.ID(2), results[1].Record.Id)
	assert.Greater(t, results[0].Score, results[1].Score)
	// Record 3 is orthogonal to the query and falls below the threshold.
}

func TestSearchCategoryFilter(t *testing.T) {
	env := newSearchEnv(t)
	env.saveManifest(t)

	now := time.Now().UTC()
	env.seedIndexed(t, 1, []float32{1, 0, 0}, core.CategoryBackend, now)
	env.seedIndexed(t, 2, []float32{1, 0, 0}, core.CategoryQA, now)

	env.fixQueryVector([]float32{1, 0, 0})

	results, err := env.searcher.Search(context.Background(), &core.SearchQuery{
		Text:           "qa engineer",
		CategoryFilter: core.CategoryQA,
		Limit:          DefaultLimit,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, core.ID(2), results[0].Record.Id)
}

func TestSearchLimit(t *testing.T) {
	env := newSearchEnv(t)
	env.saveManifest(t)

	now := time.Now().UTC()
	env.seedIndexed(t, 1, []float32{1, 0, 0}, core.CategoryBackend, now)
	env.seedIndexed(t, 2, []float32{0.9, 0.1, 0}, core.CategoryBackend, now)
	env.seedIndexed(t, 3, []float32{0.8, 0.2, 0}, core.CategoryBackend, now)

	env.fixQueryVector([]float32{1, 0, 0})

	results, err := env.searcher.Search(context.Background(), &core.SearchQuery{
		Text:  "backend",
		Limit: 2,
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchEnhancementRewritesQuery(t *testing.T) {
	service := enhance.NewService()
	service.SetStrategy(&rewritingEnhancer{output: "golang backend microservices kubernetes"})

	env := newSearchEnv(t, WithEnhancement(service))
	env.saveManifest(t)

	var embedded string
	env.provider.MockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		embedded = text
		return []float32{1, 0, 0}, nil
	}

	query := &core.SearchQuery{Text: "golang", Limit: DefaultLimit}
	_, err := env.searcher.Search(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, "golang backend microservices kubernetes", query.EnhancedText)
	assert.Equal(t, query.EnhancedText, embedded)
}

func TestSearchEnhancementFailureFallsBack(t *testing.T) {
	service := enhance.NewService()
	service.SetStrategy(&failingEnhancer{})

	env := newSearchEnv(t, WithEnhancement(service))
	env.saveManifest(t)

	var embedded string
	env.provider.MockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		embedded = text
		return []float32{1, 0, 0}, nil
	}

	query := &core.SearchQuery{Text: "python developer", Limit: DefaultLimit}
	_, err := env.searcher.Search(context.Background(), query)
	require.NoError(t, err)

	// The original query is embedded when enhancement fails.
	assert.Equal(t, "python developer", query.EnhancedText)
	assert.Equal(t, "python developer", embedded)
}

func TestSearchStoreErrorSurfaces(t *testing.T) {
	env := newSearchEnv(t)
	env.saveManifest(t)
	env.fixQueryVector([]float32{1, 0, 0})

	require.NoError(t, env.backend.Close())

	_, err := env.searcher.Search(context.Background(), &core.SearchQuery{
		Text:  "backend",
		Limit: DefaultLimit,
	})
	assert.Error(t, err)
}

// recordingMonitor captures the callback sequence for assertions.
type recordingMonitor struct {
	started  string
	enhanced string
	dims     int
	finished bool
}

func (m *recordingMonitor) Start(query string) { m.started = query }
func (m *recordingMonitor) AfterEnhancement(_ enhance.Strategy, enhanced string) {
	m.enhanced = enhanced
}
func (m *recordingMonitor) AfterEmbedding(dims int)          { m.dims = dims }
func (m *recordingMonitor) Finish(_ []*core.SearchResult)    { m.finished = true }

func TestSearchMonitorCallbacks(t *testing.T) {
	env := newSearchEnv(t)
	env.saveManifest(t)
	env.fixQueryVector([]float32{1, 0, 0})

	monitor := &recordingMonitor{}
	_, err := env.searcher.SearchWithMonitor(context.Background(), &core.SearchQuery{
		Text:  "devops engineer",
		Limit: DefaultLimit,
	}, monitor)
	require.NoError(t, err)

	assert.Equal(t, "devops engineer", monitor.started)
	assert.Equal(t, "devops engineer", monitor.enhanced)
	assert.Equal(t, 3, monitor.dims)
	assert.True(t, monitor.finished)
}
