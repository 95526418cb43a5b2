package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/talentq/core"
	"github.com/poiesic/talentq/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(backend *Backend) (*ProfileRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &ProfileRepository{backend: backend}, nil
}

// Close is a no-op; the backend is closed by its owner.
func (r *ProfileRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ProfileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddProfiles stores new profiles.
func (r *ProfileRepository) AddProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := storedNow()
		for _, profile := range profiles {
			if err := core.ValidateProfile(profile); err != nil {
				return err
			}
			key := makeProfileKey(profile.User.Id)
			existing, err := readProfile(tx, key)
			if err != nil {
				return err
			}
			if existing != nil {
				return fmt.Errorf("%w: profile %d", storage.ErrDuplicateKey, profile.User.Id)
			}

			profile.InsertedAt = now
			profile.UpdatedAt = now
			if err := tx.Set(key, storage.MarshalProfile(profile)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return profiles, err
}

// UpdateProfiles replaces existing profiles.
func (r *ProfileRepository) UpdateProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := storedNow()
		for _, profile := range profiles {
			if err := core.ValidateProfile(profile); err != nil {
				return err
			}
			key := makeProfileKey(profile.User.Id)
			old, err := readProfile(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return fmt.Errorf("%w: profile %d", storage.ErrNotFound, profile.User.Id)
			}

			profile.InsertedAt = old.InsertedAt
			profile.UpdatedAt = now
			if err := tx.Set(key, storage.MarshalProfile(profile)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return profiles, err
}

// UpsertProfiles adds missing profiles and replaces existing ones.
func (r *ProfileRepository) UpsertProfiles(ctx context.Context, profiles ...*core.Profile) (int, error) {
	inserted := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := storedNow()
		for _, profile := range profiles {
			if err := core.ValidateProfile(profile); err != nil {
				return err
			}
			key := makeProfileKey(profile.User.Id)
			old, err := readProfile(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				profile.InsertedAt = now
				inserted++
			} else {
				profile.InsertedAt = old.InsertedAt
			}
			profile.UpdatedAt = now
			if err := tx.Set(key, storage.MarshalProfile(profile)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// DeleteProfiles removes profiles by their IDs.
func (r *ProfileRepository) DeleteProfiles(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeProfileKey(id)
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("%w: profile %d", storage.ErrNotFound, id)
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProfile retrieves a single profile by ID.
func (r *ProfileRepository) GetProfile(ctx context.Context, id core.ID) (*core.Profile, error) {
	var result *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readProfile(tx, makeProfileKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("%w: profile %d", storage.ErrNotFound, id)
		}
		return nil
	}, false)
	return result, err
}

// GetProfiles retrieves multiple profiles by their IDs.
func (r *ProfileRepository) GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error) {
	var result []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			profile, err := readProfile(tx, makeProfileKey(id))
			if err != nil {
				return err
			}
			if profile != nil {
				result = append(result, profile)
			}
		}
		return nil
	}, false)
	return result, err
}

// ForEachProfile calls fn for every stored profile in ID order.
func (r *ProfileRepository) ForEachProfile(ctx context.Context, fn func(*core.Profile) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profilePrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var profile *core.Profile
			err := iter.Item().Value(func(val []byte) error {
				var err error
				profile, err = storage.UnmarshalProfile(val)
				return err
			})
			if err != nil {
				return err
			}
			if err := fn(profile); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// CountProfiles returns the number of stored profiles.
func (r *ProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profilePrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readProfile reads a profile from the transaction.
// Returns nil, nil if the key doesn't exist.
func readProfile(tx *badger.Txn, key []byte) (*core.Profile, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var profile *core.Profile
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		profile, unmarshalErr = storage.UnmarshalProfile(val)
		return unmarshalErr
	})
	return profile, err
}

// storedNow returns the current time at the precision records are stored with.
func storedNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
