package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/storage"
)

// CandidateRepository implements storage.CandidateRepository for BadgerDB.
// Candidate IDs are content-derived, so no sequence is involved: upserting
// a record with an existing ID replaces it in place.
type CandidateRepository struct {
	backend *Backend
}

var _ storage.CandidateRepository = (*CandidateRepository)(nil)

// NewCandidateRepository creates a new CandidateRepository.
func NewCandidateRepository(backend *Backend) *CandidateRepository {
	return &CandidateRepository{backend: backend}
}

// Close releases repository resources.
func (r *CandidateRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *CandidateRepository) FindSimilar(ctx context.Context, vector []float32, category core.JobCategory, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, category, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *CandidateRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// UpsertCandidates inserts or replaces candidate records keyed by their IDs.
func (r *CandidateRepository) UpsertCandidates(ctx context.Context, records ...*core.CandidateRecord) ([]*core.CandidateRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, record := range records {
			if record.Id == 0 {
				return core.ErrInvalidRecord
			}
			if record.ReceivedAt.IsZero() {
				record.ReceivedAt = now
			}
			record.UpdatedAt = now

			key := makeCandidateKey(record.Id)
			value := storage.MarshalCandidateRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// GetCandidate retrieves a single candidate record by ID.
func (r *CandidateRepository) GetCandidate(ctx context.Context, id core.ID) (*core.CandidateRecord, error) {
	var result *core.CandidateRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readCandidateRecord(tx, makeCandidateKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetCandidates retrieves multiple candidate records by their IDs.
func (r *CandidateRepository) GetCandidates(ctx context.Context, ids ...core.ID) ([]*core.CandidateRecord, error) {
	var result []*core.CandidateRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record, err := r.readCandidateRecord(tx, makeCandidateKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// DeleteCandidates removes candidate records by their IDs.
func (r *CandidateRepository) DeleteCandidates(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCandidateKey(id)

			record, err := r.readCandidateRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ListCandidateIDs returns the IDs of all stored candidate records.
func (r *CandidateRepository) ListCandidateIDs(ctx context.Context) ([]core.ID, error) {
	var ids []core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(candidateRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.CandidateRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalCandidateRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil {
				ids = append(ids, record.Id)
			}
		}
		return nil
	}, false)
	return ids, err
}

// ListByStatus returns all candidate records in the given status.
func (r *CandidateRepository) ListByStatus(ctx context.Context, status core.Status) ([]*core.CandidateRecord, error) {
	var results []*core.CandidateRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(candidateRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.CandidateRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalCandidateRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil && record.Status == status {
				results = append(results, record)
			}
		}
		return nil
	}, false)
	return results, err
}

// readCandidateRecord reads a record by key within a transaction.
// Returns nil, nil if the key does not exist.
func (r *CandidateRepository) readCandidateRecord(tx *badger.Txn, key []byte) (*core.CandidateRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.CandidateRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalCandidateRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
