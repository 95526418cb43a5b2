package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/talentq/core"
	"github.com/poiesic/talentq/storage"
)

// SavedQueryRepository implements storage.SavedQueryRepository for BadgerDB.
type SavedQueryRepository struct {
	backend *Backend
}

var _ storage.SavedQueryRepository = (*SavedQueryRepository)(nil)

// NewSavedQueryRepository creates a new SavedQueryRepository.
func NewSavedQueryRepository(backend *Backend) (*SavedQueryRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &SavedQueryRepository{backend: backend}, nil
}

// Close is a no-op; the backend is closed by its owner.
func (r *SavedQueryRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SavedQueryRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveQuery stores a query under its name.
func (r *SavedQueryRepository) SaveQuery(ctx context.Context, saved *core.SavedQuery) error {
	if err := core.ValidateSavedQuery(saved); err != nil {
		return err
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSavedQueryKey(saved.Name)
		old, err := readSavedQuery(tx, key)
		if err != nil {
			return err
		}

		now := storedNow()
		if old != nil {
			saved.InsertedAt = old.InsertedAt
		} else {
			saved.InsertedAt = now
		}
		saved.UpdatedAt = now
		if err := tx.Set(key, storage.MarshalSavedQuery(saved)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadQuery retrieves a saved query by name.
func (r *SavedQueryRepository) LoadQuery(ctx context.Context, name string) (*core.SavedQuery, error) {
	var saved *core.SavedQuery
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		saved, err = readSavedQuery(tx, makeSavedQueryKey(name))
		if err != nil {
			return err
		}
		if saved == nil {
			return fmt.Errorf("%w: saved query %q", storage.ErrNotFound, name)
		}
		return nil
	}, false)
	return saved, err
}

// ListQueries returns every saved query ordered by name.
func (r *SavedQueryRepository) ListQueries(ctx context.Context) ([]*core.SavedQuery, error) {
	var result []*core.SavedQuery
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(savedQueryPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				saved, err := storage.UnmarshalSavedQuery(val)
				if err != nil {
					return err
				}
				result = append(result, saved)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	return result, err
}

// DeleteQuery removes a saved query by name.
func (r *SavedQueryRepository) DeleteQuery(ctx context.Context, name string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSavedQueryKey(name)
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: saved query %q", storage.ErrNotFound, name)
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

func readSavedQuery(tx *badger.Txn, key []byte) (*core.SavedQuery, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var saved *core.SavedQuery
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		saved, unmarshalErr = storage.UnmarshalSavedQuery(val)
		return unmarshalErr
	})
	return saved, err
}
