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
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/resumatch/ai"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/extract"
	"github.com/poiesic/resumatch/parse"
	"github.com/poiesic/resumatch/storage"
)

// processor walks one document through the stage sequence
// received -> parsing -> parsed -> embedding -> indexed, persisting the
// status after every stage so an interrupted run is observable.
//
// Transient storage and embedding errors are retried with backoff; anything
// else marks the document failed with the reason recorded on the record.
type processor struct {
	candidates  storage.CandidateRepository
	blobs       storage.BlobStore
	manifests   storage.ManifestRepository
	embedder    ai.Embedder
	model       string
	dimensions  int
	maxAttempts int
	baseDelay   time.Duration
	logger      *slog.Logger
}

func newProcessor(
	candidates storage.CandidateRepository,
	blobs storage.BlobStore,
	manifests storage.ManifestRepository,
	embedder ai.Embedder,
	model string,
	dimensions int,
	maxAttempts int,
	baseDelay time.Duration,
	logger *slog.Logger,
) processor {
	return processor{
		candidates:  candidates,
		blobs:       blobs,
		manifests:   manifests,
		embedder:    embedder,
		model:       model,
		dimensions:  dimensions,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		logger:      logger.With("component", "processor"),
	}
}

// process runs the full stage sequence for one document. The returned error
// is for the caller's logging; terminal failures are already recorded on the
// record by the time process returns.
func (p *processor) process(ctx context.Context, id core.ID) error {
	var record *core.CandidateRecord
	if err := p.retryTransient(ctx, func() error {
		var err error
		record, err = p.candidates.GetCandidate(ctx, id)
		return err
	}); err != nil {
		return err
	}

	// Re-triggered, refreshed, and re-uploaded documents all re-enter at the
	// start. A record found mid-pipeline belongs to an interrupted run and
	// restarts from the beginning too; every stage is a pure recompute.
	if record.Status != core.StatusReceived {
		record.Status = core.StatusReceived
		record.FailureReason = ""
		record.Vector = nil
		if err := p.persist(ctx, record); err != nil {
			return err
		}
	}

	if err := p.advance(ctx, record, core.StatusParsing); err != nil {
		return err
	}

	format, err := extract.ParseFormat(record.Format)
	if err != nil {
		return p.fail(ctx, record, err)
	}

	var payload []byte
	if err := p.retryTransient(ctx, func() error {
		var err error
		payload, err = p.blobs.GetBlob(ctx, blobKey(id))
		return err
	}); err != nil {
		return p.fail(ctx, record, err)
	}

	text, err := extract.Extract(payload, format)
	if err != nil {
		// Extraction failure is terminal for the document; the payload will
		// not get less corrupt on retry.
		return p.fail(ctx, record, err)
	}

	record.RawText = text
	record.Fields = parse.ExtractFields(text)
	if err := p.advance(ctx, record, core.StatusParsed); err != nil {
		return err
	}

	if err := p.checkManifest(ctx); err != nil {
		return p.fail(ctx, record, err)
	}

	if err := p.advance(ctx, record, core.StatusEmbedding); err != nil {
		return err
	}

	var vector []float32
	if err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vector, embedErr = p.embedder.EmbedText(ctx, record.CanonicalText())
		return embedErr
	}, p.maxAttempts, p.baseDelay); err != nil {
		return p.fail(ctx, record, err)
	}

	if p.dimensions > 0 && len(vector) != p.dimensions {
		return p.fail(ctx, record, fmt.Errorf("%w: embedder returned %d dimensions, index expects %d",
			core.ErrEmbeddingModelMismatch, len(vector), p.dimensions))
	}

	record.Vector = core.NormalizeVector(vector)
	record.IndexedAt = time.Now().UTC()
	if err := p.advance(ctx, record, core.StatusIndexed); err != nil {
		return err
	}

	p.logger.Debug("document indexed",
		"id", record.Id,
		"source", record.SourceName,
		"category", record.Fields.Category,
		"skills", len(record.Fields.Skills))
	return nil
}

// checkManifest verifies the index was built with the processor's embedding
// model, creating the manifest on first use. A mismatch is a configuration
// error that only a full reindex resolves.
func (p *processor) checkManifest(ctx context.Context) error {
	var manifest *core.IndexManifest
	if err := p.retryTransient(ctx, func() error {
		var err error
		manifest, err = p.manifests.LoadManifest(ctx)
		return err
	}); err != nil {
		return err
	}

	if manifest == nil {
		return p.retryTransient(ctx, func() error {
			return p.manifests.SaveManifest(ctx, &core.IndexManifest{
				EmbeddingModel: p.model,
				Dimensions:     p.dimensions,
			})
		})
	}

	if manifest.EmbeddingModel != p.model || manifest.Dimensions != p.dimensions {
		return fmt.Errorf("%w: index built with %s (%d dims), provider is %s (%d dims)",
			core.ErrEmbeddingModelMismatch,
			manifest.EmbeddingModel, manifest.Dimensions, p.model, p.dimensions)
	}
	return nil
}

// advance validates and applies a status transition, then persists the record.
func (p *processor) advance(ctx context.Context, record *core.CandidateRecord, next core.Status) error {
	if !core.CanTransition(record.Status, next) {
		return fmt.Errorf("%w: %s -> %s", core.ErrInvalidTransition, record.Status, next)
	}
	record.Status = next
	return p.persist(ctx, record)
}

// fail marks the record failed with the cause recorded, then returns the
// cause. The vector is cleared so a failed document never matches searches.
func (p *processor) fail(ctx context.Context, record *core.CandidateRecord, cause error) error {
	record.Status = core.StatusFailed
	record.FailureReason = cause.Error()
	record.Vector = nil
	if err := p.persist(ctx, record); err != nil {
		p.logger.Error("error recording document failure", "id", record.Id, "err", err)
	}
	p.logger.Warn("document processing failed", "id", record.Id, "reason", cause.Error())
	return cause
}

func (p *processor) persist(ctx context.Context, record *core.CandidateRecord) error {
	return p.retryTransient(ctx, func() error {
		_, err := p.candidates.UpsertCandidates(ctx, record)
		return err
	})
}

// retryTransient retries op with backoff while it returns transient storage
// errors. Permanent errors short-circuit and surface immediately.
func (p *processor) retryTransient(ctx context.Context, op func() error) error {
	var permanent error
	err := RetryWithBackoff(ctx, func() error {
		err := op()
		if err == nil {
			return nil
		}
		if storage.IsTransient(err) {
			return err
		}
		permanent = err
		return nil
	}, p.maxAttempts, p.baseDelay)
	if err != nil {
		return err
	}
	return permanent
}
