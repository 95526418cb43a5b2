package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/talentq/core"
	"github.com/poiesic/talentq/storage"
)

const (
	// upsertBatchSize bounds the number of profiles written per transaction.
	upsertBatchSize = 256

	defaultDebounce = 250 * time.Millisecond

	defaultRetryAttempts = 3
	defaultRetryDelay    = 10 * time.Millisecond
)

// ImportMonitor observes completed file imports.
type ImportMonitor interface {
	FileImported(path string, imported, skipped int)
}

type noopMonitor struct{}

func (noopMonitor) FileImported(string, int, int) {}

// Importer loads profile documents into a profile repository.
type Importer struct {
	profiles storage.ProfileRepository
	pool     *ants.Pool
	monitor  ImportMonitor
	debounce time.Duration
	attempts int
	delay    time.Duration
	logger   *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer) error

// WithPoolSize sets the number of files decoded concurrently.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(i *Importer) error {
		if size < 1 {
			size = 1
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if i.pool != nil {
			i.pool.Release()
		}
		i.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		i.logger = logger
		return nil
	}
}

// WithMonitor sets the monitor notified after each imported file.
func WithMonitor(monitor ImportMonitor) Option {
	return func(i *Importer) error {
		if monitor == nil {
			monitor = noopMonitor{}
		}
		i.monitor = monitor
		return nil
	}
}

// WithDebounce sets how long Watch waits for a file to stop changing
// before importing it.
func WithDebounce(d time.Duration) Option {
	return func(i *Importer) error {
		if d <= 0 {
			return fmt.Errorf("debounce must be positive, got %s", d)
		}
		i.debounce = d
		return nil
	}
}

// WithRetry sets how often a batch that hit a storage conflict is written
// again. The wait before each retry doubles, starting at baseDelay.
func WithRetry(attempts int, baseDelay time.Duration) Option {
	return func(i *Importer) error {
		if attempts < 1 {
			return ErrInvalidRetryAttempts
		}
		i.attempts = attempts
		i.delay = baseDelay
		return nil
	}
}

// NewImporter creates a new importer.
func NewImporter(profiles storage.ProfileRepository, opts ...Option) (*Importer, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}

	pool, err := ants.NewPool(max(runtime.NumCPU()/2, 1))
	if err != nil {
		return nil, err
	}

	i := &Importer{
		profiles: profiles,
		pool:     pool,
		monitor:  noopMonitor{},
		debounce: defaultDebounce,
		attempts: defaultRetryAttempts,
		delay:    defaultRetryDelay,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			i.Release()
			return nil, err
		}
	}

	return i, nil
}

// ImportStats summarizes an import.
type ImportStats struct {
	Files    int // Documents decoded
	Imported int // Profiles stored, new or replaced
	Created  int // Profiles that did not exist before
	Skipped  int // Invalid profiles left out
}

func (s *ImportStats) add(o *ImportStats) {
	s.Files += o.Files
	s.Imported += o.Imported
	s.Created += o.Created
	s.Skipped += o.Skipped
}

// decoded is the outcome of decoding and validating one file.
type decoded struct {
	profiles []*core.Profile
	skipped  int
	err      error
}

// ImportFiles decodes paths concurrently and upserts their valid profiles.
// A file that cannot be read or decoded does not stop the others; all such
// errors are joined into the returned error, alongside the stats of the files
// that succeeded.
func (i *Importer) ImportFiles(ctx context.Context, paths ...string) (*ImportStats, error) {
	results := make([]decoded, len(paths))

	var wg sync.WaitGroup
	for n, path := range paths {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			doc, err := ReadDocument(path)
			if err != nil {
				results[n].err = err
				return
			}
			results[n].profiles, results[n].skipped = i.validate(path, doc)
		}
		if err := i.pool.Submit(task); err != nil {
			i.logger.Warn("worker pool unavailable, decoding inline", "err", err)
			task()
		}
	}
	wg.Wait()

	stats := &ImportStats{}
	var errs []error
	for n, path := range paths {
		if results[n].err != nil {
			i.logger.Error("error reading profile document", "path", path, "err", results[n].err)
			errs = append(errs, results[n].err)
			continue
		}
		fileStats, err := i.store(ctx, path, results[n])
		if err != nil {
			return stats, errors.Join(append(errs, err)...)
		}
		stats.add(fileStats)
	}

	return stats, errors.Join(errs...)
}

// ImportReader imports a single document read from r. name identifies the
// document in logs.
func (i *Importer) ImportReader(ctx context.Context, name string, r io.Reader) (*ImportStats, error) {
	doc, err := DecodeDocument(r)
	if err != nil {
		return &ImportStats{}, fmt.Errorf("%s: %w", name, err)
	}
	profiles, skipped := i.validate(name, doc)
	return i.store(ctx, name, decoded{profiles: profiles, skipped: skipped})
}

// validate converts the document's valid entries into profiles. Entries
// whose emails resolve to the same ID collapse into one profile: the last
// entry wins and keeps the position of the first.
func (i *Importer) validate(name string, doc *Document) ([]*core.Profile, int) {
	profiles := make([]*core.Profile, 0, len(doc.Profiles))
	seen := make(map[core.ID]int, len(doc.Profiles))
	skipped := 0
	for n, entry := range doc.Profiles {
		profile := entry.Profile()
		if err := core.ValidateProfile(profile); err != nil {
			i.logger.Warn("skipping invalid profile", "document", name, "index", n, "err", err)
			skipped++
			continue
		}
		if at, dup := seen[profile.User.Id]; dup {
			i.logger.Debug("duplicate profile in document", "document", name, "index", n, "email", profile.User.Email)
			profiles[at] = profile
			continue
		}
		seen[profile.User.Id] = len(profiles)
		profiles = append(profiles, profile)
	}
	return profiles, skipped
}

func (i *Importer) store(ctx context.Context, name string, d decoded) (*ImportStats, error) {
	stats := &ImportStats{Files: 1, Skipped: d.skipped}
	for start := 0; start < len(d.profiles); start += upsertBatchSize {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		end := min(start+upsertBatchSize, len(d.profiles))
		var created int
		err := i.retryConflicts(ctx, func() error {
			var err error
			created, err = i.profiles.UpsertProfiles(ctx, d.profiles[start:end]...)
			return err
		})
		if err != nil {
			i.logger.Error("error storing profiles", "document", name, "err", err)
			return stats, err
		}
		stats.Imported += end - start
		stats.Created += created
	}

	i.logger.Info("imported profile document", "document", name,
		"imported", stats.Imported, "created", stats.Created, "skipped", stats.Skipped)
	i.monitor.FileImported(name, stats.Imported, stats.Skipped)
	return stats, nil
}

// Release releases the worker pool.
// The importer should not be used after calling Release.
func (i *Importer) Release() {
	if i.pool != nil {
		i.pool.Release()
	}
}
