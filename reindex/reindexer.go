// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/poiesic/resumatch/ai"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/storage"
)

// Config holds configuration for the reindexing operation.
type Config struct {
	// BatchSize is the number of records to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer orchestrates re-embedding every indexed document with the
// provider's current model and updating the index manifest.
type Reindexer struct {
	candidates storage.CandidateRepository
	manifests  storage.ManifestRepository
	model      string
	dimensions int
	config     *Config
	progress   io.Writer
	processor  *BatchProcessor
	iterator   *RecordIterator
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(
	candidates storage.CandidateRepository,
	manifests storage.ManifestRepository,
	provider ai.Provider,
	config *Config,
	progress io.Writer,
) (*Reindexer, error) {
	if candidates == nil {
		return nil, ErrCandidateRepositoryRequired
	}
	if manifests == nil {
		return nil, ErrManifestRepositoryRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}

	processor := NewBatchProcessor(candidates, provider.Embedder(),
		provider.Dimensions(), config.MaxRetries, config.RetryDelay)
	iterator := NewRecordIterator(candidates, config.BatchSize)

	return &Reindexer{
		candidates: candidates,
		manifests:  manifests,
		model:      provider.Model(),
		dimensions: provider.Dimensions(),
		config:     config,
		progress:   progress,
		processor:  processor,
		iterator:   iterator,
	}, nil
}

// Run executes the reindexing operation. Every indexed document is
// re-embedded with the current model; the manifest is written only after the
// whole rebuild succeeds, so a failed run leaves the old model authoritative
// and must be re-run before searches with the new model are accepted.
func (r *Reindexer) Run(ctx context.Context) error {
	ids, err := r.candidates.ListCandidateIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to query records: %w", err)
	}

	totalRecords := len(ids)
	if totalRecords == 0 {
		fmt.Fprintf(r.progress, "No documents found in database (0 records)\n")
		return r.saveManifest(ctx)
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d documents with model %s (batch size: %d)\n",
		totalRecords, r.model, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, totalRecords, r.config.ReportInterval)
	tracker.Start()

	processed := 0
	reembedded := 0

	err = r.iterator.ForEach(ctx, func(records []*core.CandidateRecord) error {
		n, err := r.processor.Process(ctx, records)
		if err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		reembedded += n
		processed += len(records)
		tracker.Update(processed)

		return nil
	})

	if err != nil {
		return err
	}

	tracker.Finish()

	if err := r.saveManifest(ctx); err != nil {
		return err
	}

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Re-embedded %d of %d documents in %v (%.1f documents/sec)\n",
		reembedded, totalRecords, elapsed.Round(time.Second), float64(totalRecords)/elapsed.Seconds())

	return nil
}

func (r *Reindexer) saveManifest(ctx context.Context) error {
	err := r.manifests.SaveManifest(ctx, &core.IndexManifest{
		EmbeddingModel: r.model,
		Dimensions:     r.dimensions,
	})
	if err != nil {
		return fmt.Errorf("failed to update index manifest: %w", err)
	}
	return nil
}
