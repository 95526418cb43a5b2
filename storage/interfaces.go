package storage

import (
	"context"

	"github.com/poiesic/talentq/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close releases resources held by the repository. It does not close
	// the shared backend.
	Close() error
}

// ProfileRepository provides operations for managing the candidate pool.
// Profiles are keyed by the ID derived from the user's email.
type ProfileRepository interface {
	Repository
	// AddProfiles stores new profiles.
	// Sets InsertedAt and UpdatedAt.
	// Returns ErrDuplicateKey if a profile with the same ID already exists.
	AddProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// UpdateProfiles replaces existing profiles.
	// Keeps the stored InsertedAt and refreshes UpdatedAt.
	// Returns ErrNotFound if any profile doesn't exist.
	UpdateProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// UpsertProfiles adds missing profiles and replaces existing ones.
	// Returns the number of profiles that were newly inserted.
	UpsertProfiles(ctx context.Context, profiles ...*core.Profile) (int, error)

	// DeleteProfiles removes profiles by their IDs.
	// Returns ErrNotFound if any profile doesn't exist.
	DeleteProfiles(ctx context.Context, ids ...core.ID) error

	// GetProfile retrieves a single profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id core.ID) (*core.Profile, error)

	// GetProfiles retrieves multiple profiles by their IDs.
	// Returns only the profiles that exist (no error for missing profiles).
	GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error)

	// ForEachProfile calls fn for every stored profile in ID order.
	// Iteration stops at the first error returned by fn or when ctx is done,
	// and that error is returned.
	ForEachProfile(ctx context.Context, fn func(*core.Profile) error) error

	// CountProfiles returns the number of stored profiles.
	CountProfiles(ctx context.Context) (int, error)
}

// SavedQueryRepository provides operations for managing saved queries.
type SavedQueryRepository interface {
	Repository
	// SaveQuery stores a query under its name, replacing any query with the
	// same name. InsertedAt survives replacement.
	SaveQuery(ctx context.Context, saved *core.SavedQuery) error

	// LoadQuery retrieves a saved query by name.
	// Returns ErrNotFound if no query has that name.
	LoadQuery(ctx context.Context, name string) (*core.SavedQuery, error)

	// ListQueries returns every saved query ordered by name.
	ListQueries(ctx context.Context) ([]*core.SavedQuery, error)

	// DeleteQuery removes a saved query by name.
	// Returns ErrNotFound if no query has that name.
	DeleteQuery(ctx context.Context, name string) error
}
