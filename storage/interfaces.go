package storage

import (
	"context"

	"github.com/poiesic/resumatch/core"
)

// Repository provides common storage operations shared across repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds indexed candidate records similar to the given vector.
	// If category is non-empty, only records with a matching job category are
	// considered, before ranking. Returns records with similarity >=
	// minSimilarity, up to limit results, ordered by similarity score
	// descending with ties broken by most-recent index time first.
	FindSimilar(ctx context.Context, vector []float32, category core.JobCategory, minSimilarity float32, limit int) ([]*core.SearchResult, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// CandidateRepository provides operations for managing candidate records.
type CandidateRepository interface {
	Repository

	// UpsertCandidates inserts or replaces candidate records keyed by their
	// content-derived IDs. Re-upserting the same ID replaces the prior
	// vector and metadata atomically; no duplicate entries are created.
	// Sets ReceivedAt if not already set and refreshes UpdatedAt.
	UpsertCandidates(ctx context.Context, records ...*core.CandidateRecord) ([]*core.CandidateRecord, error)

	// GetCandidate retrieves a single candidate record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetCandidate(ctx context.Context, id core.ID) (*core.CandidateRecord, error)

	// GetCandidates retrieves multiple candidate records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetCandidates(ctx context.Context, ids ...core.ID) ([]*core.CandidateRecord, error)

	// DeleteCandidates removes candidate records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteCandidates(ctx context.Context, ids ...core.ID) error

	// ListCandidateIDs returns the IDs of all stored candidate records.
	ListCandidateIDs(ctx context.Context) ([]core.ID, error)

	// ListByStatus returns all candidate records in the given status.
	ListByStatus(ctx context.Context, status core.Status) ([]*core.CandidateRecord, error)
}

// BlobStore provides storage for original uploaded document payloads.
type BlobStore interface {
	// PutBlob stores a payload under the given key, replacing any existing value.
	PutBlob(ctx context.Context, key string, data []byte) error

	// GetBlob retrieves a payload by key.
	// Returns ErrNotFound if no payload exists under the key.
	GetBlob(ctx context.Context, key string) ([]byte, error)
}

// ManifestRepository persists the index manifest recording which embedding
// model built the vector index. Exactly one manifest exists per store.
type ManifestRepository interface {
	// SaveManifest persists the manifest, refreshing its UpdatedAt.
	SaveManifest(ctx context.Context, manifest *core.IndexManifest) error

	// LoadManifest retrieves the manifest.
	// Returns nil, nil if no manifest has been saved yet.
	LoadManifest(ctx context.Context) (*core.IndexManifest, error)
}
