package reindex

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/resumatch/ai/mock"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/storage"
	"github.com/poiesic/resumatch/storage/badger"
)

func setupTestStore(t *testing.T) (storage.CandidateRepository, storage.ManifestRepository) {
	t.Helper()
	candidates, _, manifests, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return candidates, manifests
}

func seedRecords(t *testing.T, repo storage.CandidateRepository, indexed, failed int) {
	t.Helper()
	ctx := context.Background()

	id := core.ID(1)
	for i := 0; i < indexed; i++ {
		_, err := repo.UpsertCandidates(ctx, &core.CandidateRecord{
			Id:         id,
			SourceName: "resume.txt",
			Format:     "txt",
			RawText:    "experienced python developer",
			Vector:     []float32{1, 0, 0},
			Status:     core.StatusIndexed,
			IndexedAt:  time.Now().UTC().Add(-time.Hour),
		})
		require.NoError(t, err)
		id++
	}
	for i := 0; i < failed; i++ {
		_, err := repo.UpsertCandidates(ctx, &core.CandidateRecord{
			Id:            id,
			SourceName:    "resume.txt",
			Format:        "txt",
			Status:        core.StatusFailed,
			FailureReason: "corrupt document",
		})
		require.NoError(t, err)
		id++
	}
}

func TestNewReindexerValidation(t *testing.T) {
	candidates, manifests := setupTestStore(t)
	provider := mock.NewMockProvider()

	_, err := NewReindexer(nil, manifests, provider, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrCandidateRepositoryRequired)

	_, err = NewReindexer(candidates, nil, provider, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrManifestRepositoryRequired)

	_, err = NewReindexer(candidates, manifests, nil, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrProviderRequired)
}

func TestReindexerRun(t *testing.T) {
	candidates, manifests := setupTestStore(t)
	ctx := context.Background()

	seedRecords(t, candidates, 10, 0)

	// Index previously built by another model.
	require.NoError(t, manifests.SaveManifest(ctx, &core.IndexManifest{
		EmbeddingModel: "old-model",
		Dimensions:     3,
	}))

	provider := mock.NewMockProvider()
	provider.MockEmbedder.Dim = 4

	var buf bytes.Buffer
	config := &Config{
		BatchSize:      3,
		ReportInterval: 3,
		MaxRetries:     3,
		RetryDelay:     time.Millisecond,
	}
	r, err := NewReindexer(candidates, manifests, provider, config, &buf)
	require.NoError(t, err)

	require.NoError(t, r.Run(ctx))

	// Every indexed record carries a vector from the new model.
	ids, err := candidates.ListCandidateIDs(ctx)
	require.NoError(t, err)
	records, err := candidates.GetCandidates(ctx, ids...)
	require.NoError(t, err)
	for _, record := range records {
		assert.Len(t, record.Vector, 4)
	}

	manifest, err := manifests.LoadManifest(ctx)
	require.NoError(t, err)
	require.NotNil(t, manifest)
	assert.Equal(t, provider.Model(), manifest.EmbeddingModel)
	assert.Equal(t, 4, manifest.Dimensions)

	assert.Contains(t, buf.String(), "Reindex complete")
}

func TestReindexerSkipsUnindexedRecords(t *testing.T) {
	candidates, manifests := setupTestStore(t)
	ctx := context.Background()

	seedRecords(t, candidates, 2, 3)

	provider := mock.NewMockProvider()
	provider.MockEmbedder.Dim = 4

	var buf bytes.Buffer
	r, err := NewReindexer(candidates, manifests, provider, &Config{
		BatchSize:      10,
		ReportInterval: 10,
		MaxRetries:     1,
		RetryDelay:     time.Millisecond,
	}, &buf)
	require.NoError(t, err)

	require.NoError(t, r.Run(ctx))

	failed, err := candidates.ListByStatus(ctx, core.StatusFailed)
	require.NoError(t, err)
	require.Len(t, failed, 3)
	for _, record := range failed {
		assert.Nil(t, record.Vector)
		assert.Equal(t, "corrupt document", record.FailureReason)
	}

	assert.Contains(t, buf.String(), "Re-embedded 2 of 5")
}

func TestReindexerEmptyStore(t *testing.T) {
	candidates, manifests := setupTestStore(t)
	ctx := context.Background()

	provider := mock.NewMockProvider()

	var buf bytes.Buffer
	r, err := NewReindexer(candidates, manifests, provider, nil, &buf)
	require.NoError(t, err)

	require.NoError(t, r.Run(ctx))
	assert.Contains(t, buf.String(), "No documents found")

	// The manifest still reflects the current model so future ingestion
	// and searches agree on the embedding space.
	manifest, err := manifests.LoadManifest(ctx)
	require.NoError(t, err)
	require.NotNil(t, manifest)
	assert.Equal(t, provider.Model(), manifest.EmbeddingModel)
}

func TestReindexerEmbedderFailureLeavesManifest(t *testing.T) {
	candidates, manifests := setupTestStore(t)
	ctx := context.Background()

	seedRecords(t, candidates, 3, 0)

	require.NoError(t, manifests.SaveManifest(ctx, &core.IndexManifest{
		EmbeddingModel: "old-model",
		Dimensions:     3,
	}))

	provider := mock.NewMockProvider()
	provider.MockEmbedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedding service unavailable")
	}

	var buf bytes.Buffer
	r, err := NewReindexer(candidates, manifests, provider, &Config{
		BatchSize:      10,
		ReportInterval: 10,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
	}, &buf)
	require.NoError(t, err)

	err = r.Run(ctx)
	require.Error(t, err)

	// The old model stays authoritative until a rebuild succeeds.
	manifest, err := manifests.LoadManifest(ctx)
	require.NoError(t, err)
	require.NotNil(t, manifest)
	assert.Equal(t, "old-model", manifest.EmbeddingModel)
}
