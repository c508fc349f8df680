package reindex

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/resumatch/ai"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/pipeline"
	"github.com/poiesic/resumatch/storage"
)

// BatchProcessor re-embeds batches of candidate records.
//
// Only indexed documents carry vectors; records in other statuses pass
// through untouched and are reported as skipped.
type BatchProcessor struct {
	repo           storage.CandidateRepository
	embedder       ai.Embedder
	dimensions     int
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.CandidateRepository, embedder ai.Embedder, dimensions, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		dimensions:     dimensions,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process re-embeds the indexed records in a batch and updates them in the
// store. Vectors are normalized after embedding so cosine similarity stays a
// dot product. Returns the number of records re-embedded.
func (bp *BatchProcessor) Process(ctx context.Context, records []*core.CandidateRecord) (int, error) {
	targets := make([]*core.CandidateRecord, 0, len(records))
	for _, record := range records {
		if record == nil || record.Status != core.StatusIndexed {
			continue
		}
		targets = append(targets, record)
	}

	if len(targets) == 0 {
		return 0, nil
	}

	texts := make([]string, len(targets))
	for i, record := range targets {
		texts[i] = record.CanonicalText()
	}

	var embeddings [][]float32
	err := pipeline.RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return 0, fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(targets) {
		return 0, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(targets), len(embeddings))
	}

	now := time.Now().UTC()
	for i, record := range targets {
		if bp.dimensions > 0 && len(embeddings[i]) != bp.dimensions {
			return 0, fmt.Errorf("%w: embedder returned %d dimensions, expected %d",
				ErrDimensionMismatch, len(embeddings[i]), bp.dimensions)
		}
		record.Vector = core.NormalizeVector(embeddings[i])
		record.IndexedAt = now
	}

	if _, err := bp.repo.UpsertCandidates(ctx, targets...); err != nil {
		return 0, fmt.Errorf("failed to update records: %w", err)
	}

	return len(targets), nil
}
