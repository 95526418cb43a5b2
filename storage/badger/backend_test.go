package badger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/talentq/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")
	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenBackend_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := OpenBackend(path, false)
	assert.ErrorContains(t, err, "is not a directory")
}

func TestBadgerLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := &badgerLoggerAdapter{
		logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	adapter.Errorf("disk %s", "full")
	adapter.Warningf("slow %d", 3)
	adapter.Infof("opened")

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `msg="disk full"`)
	assert.Contains(t, out, `msg="slow 3"`)
	assert.Contains(t, out, "level=DEBUG msg=opened")
	assert.Contains(t, out, "component=badger")
}

func TestOpenBackend_WithLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	backend, err := OpenBackend("", true, WithLogger(logger))
	require.NoError(t, err)
	defer backend.Close()

	assert.Same(t, logger, backend.logger)
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)

	assert.False(t, backend.IsClosed())
	require.NoError(t, backend.Close())
	assert.True(t, backend.IsClosed())

	err = backend.WithTransaction(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestWithTransaction(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	called := false
	err = backend.WithTransaction(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	boom := errors.New("boom")
	err = backend.WithTransaction(ctx, func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestWithTx_Conflict(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	key := []byte("k")
	err = backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(key); !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		err := backend.WithTx(func(other *badger.Txn) error {
			if err := other.Set(key, []byte("other")); err != nil {
				return err
			}
			return other.Commit()
		}, true)
		require.NoError(t, err)

		if err := tx.Set(key, []byte("mine")); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	assert.ErrorIs(t, err, storage.ErrConflict)
	assert.ErrorIs(t, err, badger.ErrConflict)
}

func TestNewRepositoriesRequireBackend(t *testing.T) {
	_, err := NewProfileRepository(nil)
	assert.ErrorIs(t, err, ErrBackendRequired)

	_, err = NewSavedQueryRepository(nil)
	assert.ErrorIs(t, err, ErrBackendRequired)
}

func TestMakeProfileKeyOrder(t *testing.T) {
	assert.Negative(t, bytes.Compare(makeProfileKey(1), makeProfileKey(256)))
	assert.Negative(t, bytes.Compare(makeProfileKey(255), makeProfileKey(1<<40)))
	assert.True(t, bytes.HasPrefix(makeProfileKey(7), []byte(profilePrefix)))
}
