package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/resumatch/storage"
)

// BlobRepository implements storage.BlobStore for BadgerDB. It holds the
// original uploaded document payloads so a document can be re-processed
// without a fresh upload.
type BlobRepository struct {
	backend *Backend
}

var _ storage.BlobStore = (*BlobRepository)(nil)

// NewBlobRepository creates a new BlobRepository.
func NewBlobRepository(backend *Backend) *BlobRepository {
	return &BlobRepository{backend: backend}
}

// PutBlob stores a payload under the given key, replacing any existing value.
func (r *BlobRepository) PutBlob(ctx context.Context, key string, data []byte) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeBlobKey(key), data); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetBlob retrieves a payload by key.
func (r *BlobRepository) GetBlob(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeBlobKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return data, nil
}
