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


package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/resumatch/ai"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/extract"
	"github.com/poiesic/resumatch/storage"
)

const (
	// DefaultMaxAttempts is the number of attempts for transient storage
	// and embedding failures before a document is marked failed.
	DefaultMaxAttempts = 3

	// DefaultBaseDelay is the initial backoff delay; it doubles per attempt.
	DefaultBaseDelay = 500 * time.Millisecond
)

// Pipeline orchestrates the ingestion and processing of resume documents.
// Uploads are accepted synchronously; extraction, field parsing, and
// embedding run on a worker pool.
type Pipeline struct {
	candidates  storage.CandidateRepository
	blobs       storage.BlobStore
	manifests   storage.ManifestRepository
	pool        *ants.Pool
	proc        processor
	maxAttempts int
	baseDelay   time.Duration
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithRetryPolicy sets the retry budget for transient storage and embedding
// failures. Extraction errors and embedding-model mismatches are never
// retried regardless of this setting.
func WithRetryPolicy(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.maxAttempts = maxAttempts
		p.baseDelay = baseDelay
		return nil
	}
}

// NewPipeline creates a new document processing pipeline.
func NewPipeline(
	candidates storage.CandidateRepository,
	blobs storage.BlobStore,
	manifests storage.ManifestRepository,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if candidates == nil {
		return nil, ErrCandidateRepositoryRequired
	}
	if blobs == nil {
		return nil, ErrBlobStoreRequired
	}
	if manifests == nil {
		return nil, ErrManifestRepositoryRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		candidates:  candidates,
		blobs:       blobs,
		manifests:   manifests,
		pool:        pool,
		maxAttempts: DefaultMaxAttempts,
		baseDelay:   DefaultBaseDelay,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create the processor after options are applied so it gets final config.
	p.proc = newProcessor(candidates, blobs, manifests,
		provider.Embedder(), provider.Model(), provider.Dimensions(),
		p.maxAttempts, p.baseDelay, p.logger)

	return p, nil
}

// Ingest accepts one uploaded document, stores the payload, creates the
// candidate record in StatusReceived, and schedules async processing.
//
// The document ID is derived from the payload bytes, so uploading the same
// content twice yields the same ID and refreshes the existing record rather
// than creating a duplicate.
func (p *Pipeline) Ingest(ctx context.Context, sourceName string, payload []byte, format extract.Format) (core.ID, error) {
	if len(payload) == 0 {
		return 0, ErrEmptyPayload
	}
	// Reject unknown format tags before accepting the upload.
	if _, err := extract.ParseFormat(string(format)); err != nil {
		return 0, err
	}

	id := core.IDFromContent(payload)

	if err := p.blobs.PutBlob(ctx, blobKey(id), payload); err != nil {
		return 0, err
	}

	record := &core.CandidateRecord{
		Id:         id,
		SourceName: sourceName,
		Format:     string(format),
		Status:     core.StatusReceived,
	}
	if _, err := p.candidates.UpsertCandidates(ctx, record); err != nil {
		return 0, err
	}

	if err := p.Enqueue(id); err != nil {
		return 0, err
	}

	p.logger.Debug("document ingested", "id", id, "source", sourceName, "format", format)
	return id, nil
}

// IngestSync accepts one uploaded document and processes it to completion
// before returning, bypassing the worker pool. Intended for batch tools and
// tests; services should prefer Ingest.
func (p *Pipeline) IngestSync(ctx context.Context, sourceName string, payload []byte, format extract.Format) (core.ID, error) {
	if len(payload) == 0 {
		return 0, ErrEmptyPayload
	}
	if _, err := extract.ParseFormat(string(format)); err != nil {
		return 0, err
	}

	id := core.IDFromContent(payload)

	if err := p.blobs.PutBlob(ctx, blobKey(id), payload); err != nil {
		return 0, err
	}

	record := &core.CandidateRecord{
		Id:         id,
		SourceName: sourceName,
		Format:     string(format),
		Status:     core.StatusReceived,
	}
	if _, err := p.candidates.UpsertCandidates(ctx, record); err != nil {
		return 0, err
	}

	return id, p.proc.process(ctx, id)
}

// Enqueue schedules async processing for an already-stored document.
// Errors during async processing are logged and recorded on the document
// record; they do not surface here.
func (p *Pipeline) Enqueue(id core.ID) error {
	return p.pool.Submit(func() {
		if err := p.proc.process(context.Background(), id); err != nil {
			p.logger.Error("error processing document", "id", id, "err", err)
		}
	})
}

// Process runs the full processing sequence for one document synchronously.
func (p *Pipeline) Process(ctx context.Context, id core.ID) error {
	return p.proc.process(ctx, id)
}

// RetriggerFailed moves every failed document back to StatusReceived and
// schedules it for reprocessing. Returns the IDs that were re-triggered.
func (p *Pipeline) RetriggerFailed(ctx context.Context) ([]core.ID, error) {
	failed, err := p.candidates.ListByStatus(ctx, core.StatusFailed)
	if err != nil {
		return nil, err
	}

	ids := make([]core.ID, 0, len(failed))
	for _, record := range failed {
		record.Status = core.StatusReceived
		record.FailureReason = ""
		if _, err := p.candidates.UpsertCandidates(ctx, record); err != nil {
			return ids, err
		}
		if err := p.Enqueue(record.Id); err != nil {
			return ids, err
		}
		ids = append(ids, record.Id)
	}

	if len(ids) > 0 {
		p.logger.Info("re-triggered failed documents", "count", len(ids))
	}
	return ids, nil
}

// Release releases the worker pool. The pipeline should not be used after
// calling Release. In-flight tasks are allowed to finish.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// blobKey maps a document ID to its payload key in the blob store.
func blobKey(id core.ID) string {
	return strconv.FormatUint(uint64(id), 16)
}
