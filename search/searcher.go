package search

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/talentq/core"
	"github.com/poiesic/talentq/query"
	"github.com/poiesic/talentq/storage"
)

// batchSize is the number of profiles handed to a worker at once.
const batchSize = 128

// Searcher filters the stored candidate pool with boolean queries.
type Searcher struct {
	profiles storage.ProfileRepository
	engine   *query.Engine
	pool     *ants.Pool
	monitor  SearchMonitor
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the number of workers evaluating profiles.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if s.pool != nil {
			s.pool.Release()
		}
		s.pool = pool
		return nil
	}
}

// WithMonitor sets the monitor notified about every search.
func WithMonitor(monitor SearchMonitor) Option {
	return func(s *Searcher) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		s.monitor = monitor
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(profiles storage.ProfileRepository, engine *query.Engine, opts ...Option) (*Searcher, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}

	pool, err := ants.NewPool(max(runtime.NumCPU(), 1))
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		profiles: profiles,
		engine:   engine,
		pool:     pool,
		monitor:  &noopMonitor{},
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// batch is a run of consecutive profiles and their outcomes. Only the worker
// evaluating the batch writes matched.
type batch struct {
	profiles []*core.Profile
	matched  []bool
}

// Filter returns the stored profiles that satisfy q, in storage order.
// A blank query matches every profile. If limit > 0 at most limit matches
// are returned.
func (s *Searcher) Filter(ctx context.Context, q string, limit int) ([]*core.Match, error) {
	started := time.Now()
	s.monitor.Start(q)

	compiled := s.engine.Compile(q)
	s.monitor.Compiled(compiled.Fallback())
	if compiled.Fallback() {
		s.logger.Info("query matched by keyword fallback", "query", q)
	}

	var (
		wg      sync.WaitGroup
		batches []*batch
		current = &batch{}
	)

	evaluate := func(b *batch) {
		defer wg.Done()
		for i, profile := range b.profiles {
			b.matched[i] = compiled.Match(profile.SearchableText())
			s.monitor.Evaluated(profile.User.Id, b.matched[i])
		}
	}

	dispatch := func() {
		if len(current.profiles) == 0 {
			return
		}
		b := current
		b.matched = make([]bool, len(b.profiles))
		batches = append(batches, b)
		current = &batch{}

		wg.Add(1)
		if err := s.pool.Submit(func() { evaluate(b) }); err != nil {
			s.logger.Warn("worker pool unavailable, evaluating inline", "err", err)
			evaluate(b)
		}
	}

	err := s.profiles.ForEachProfile(ctx, func(profile *core.Profile) error {
		current.profiles = append(current.profiles, profile)
		if len(current.profiles) == batchSize {
			dispatch()
		}
		return nil
	})
	dispatch()
	wg.Wait()

	if err != nil {
		s.logger.Error("error scanning profiles", "query", q, "err", err)
		s.monitor.Finish(nil, time.Since(started))
		return nil, err
	}

	matches := []*core.Match{}
collect:
	for _, b := range batches {
		for i, profile := range b.profiles {
			if !b.matched[i] {
				continue
			}
			matches = append(matches, &core.Match{Profile: profile})
			if limit > 0 && len(matches) == limit {
				break collect
			}
		}
	}

	s.monitor.Finish(matches, time.Since(started))
	return matches, nil
}

// FilterSaved runs the query saved under name.
func (s *Searcher) FilterSaved(ctx context.Context, saved storage.SavedQueryRepository, name string, limit int) ([]*core.Match, error) {
	if saved == nil {
		return nil, ErrSavedQueryRepositoryRequired
	}
	sq, err := saved.LoadQuery(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.Filter(ctx, sq.Query, limit)
}

// Release releases the worker pool.
// The searcher should not be used after calling Release.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}
