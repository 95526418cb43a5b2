package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/talentq/core"
	"github.com/poiesic/talentq/query"
	"github.com/poiesic/talentq/storage"
	"github.com/poiesic/talentq/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMonitor captures monitor callbacks for assertions.
type recordingMonitor struct {
	mu        sync.Mutex
	queries   []string
	fallback  []bool
	evaluated int
	matched   int
	finished  []int
}

func (m *recordingMonitor) Start(q string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, q)
}

func (m *recordingMonitor) Compiled(fallback bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = append(m.fallback, fallback)
}

func (m *recordingMonitor) Evaluated(_ core.ID, matched bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluated++
	if matched {
		m.matched++
	}
}

func (m *recordingMonitor) Finish(matches []*core.Match, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finished = append(m.finished, len(matches))
}

type fixture struct {
	profiles storage.ProfileRepository
	saved    storage.SavedQueryRepository
	searcher *Searcher
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	profiles, saved, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)

	searcher, err := NewSearcher(profiles, query.Default(), opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		searcher.Release()
		backend.Close()
	})
	return &fixture{profiles: profiles, saved: saved, searcher: searcher}
}

func (f *fixture) add(t *testing.T, name string, candidate core.Candidate) *core.Profile {
	t.Helper()
	email := fmt.Sprintf("%s@example.com", name)
	profile := core.NewProfile(core.User{FullName: name, Email: email}, candidate)
	_, err := f.profiles.AddProfiles(context.Background(), profile)
	require.NoError(t, err)
	return profile
}

func names(matches []*core.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Profile.User.FullName)
	}
	return out
}

func TestNewSearcher(t *testing.T) {
	profiles, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(profiles, query.Default())
		require.NoError(t, err)
		defer searcher.Release()
		assert.NotNil(t, searcher)
	})

	t.Run("with options", func(t *testing.T) {
		searcher, err := NewSearcher(profiles, query.Default(),
			WithLogger(nil), WithPoolSize(0), WithMonitor(nil))
		require.NoError(t, err)
		defer searcher.Release()
		assert.Equal(t, slog.Default(), searcher.logger)
		assert.Equal(t, 1, searcher.pool.Cap())
		assert.IsType(t, &noopMonitor{}, searcher.monitor)
	})

	t.Run("nil profile repository", func(t *testing.T) {
		_, err := NewSearcher(nil, query.Default())
		assert.Equal(t, ErrProfileRepositoryRequired, err)
	})

	t.Run("nil engine", func(t *testing.T) {
		_, err := NewSearcher(profiles, nil)
		assert.Equal(t, ErrEngineRequired, err)
	})
}

func TestFilter_EmptyPool(t *testing.T) {
	f := newFixture(t)

	matches, err := f.searcher.Filter(context.Background(), "react", 10)
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestFilter(t *testing.T) {
	f := newFixture(t)
	f.add(t, "alice", core.Candidate{Headline: "Senior Engineer", Skills: []string{"react", "node"}})
	f.add(t, "bob", core.Candidate{Headline: "Junior Developer", Skills: []string{"python"}})
	f.add(t, "carol", core.Candidate{Headline: "Sr. Data Scientist", Skills: []string{"python", "ml"}, ResumeURL: "cv.pdf"})

	ctx := context.Background()
	tests := []struct {
		query string
		want  []string
	}{
		{"React AND Senior", []string{"alice"}},
		{"python", []string{"bob", "carol"}},
		{"senior", []string{"alice", "carol"}},
		{"python -junior", []string{"carol"}},
		{"has_resume", []string{"carol"}},
		{`"data scientist" OR react`, []string{"alice", "carol"}},
		{"golang", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			matches, err := f.searcher.Filter(ctx, tt.query, 0)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, names(matches))
		})
	}
}

func TestFilter_BlankQueryMatchesAll(t *testing.T) {
	f := newFixture(t)
	for i := range 3 {
		f.add(t, fmt.Sprintf("c%d", i), core.Candidate{})
	}

	matches, err := f.searcher.Filter(context.Background(), "  ", 0)
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestFilter_StorageOrderAndLimit(t *testing.T) {
	f := newFixture(t, WithPoolSize(4))

	ctx := context.Background()
	for i := range 500 {
		skill := "go"
		if i%2 == 0 {
			skill = "rust"
		}
		f.add(t, fmt.Sprintf("c%03d", i), core.Candidate{Skills: []string{skill}})
	}

	var ids []core.ID
	err := f.profiles.ForEachProfile(ctx, func(p *core.Profile) error {
		if p.Candidate.Skills[0] == "rust" {
			ids = append(ids, p.User.Id)
		}
		return nil
	})
	require.NoError(t, err)

	matches, err := f.searcher.Filter(ctx, "rust", 0)
	require.NoError(t, err)
	require.Len(t, matches, 250)
	for i, m := range matches {
		assert.Equal(t, ids[i], m.Profile.User.Id)
	}

	limited, err := f.searcher.Filter(ctx, "rust", 10)
	require.NoError(t, err)
	require.Len(t, limited, 10)
	for i, m := range limited {
		assert.Equal(t, ids[i], m.Profile.User.Id)
	}
}

func TestFilter_Monitor(t *testing.T) {
	monitor := &recordingMonitor{}
	f := newFixture(t, WithMonitor(monitor))
	f.add(t, "alice", core.Candidate{Skills: []string{"react"}})
	f.add(t, "bob", core.Candidate{Skills: []string{"vue"}})

	_, err := f.searcher.Filter(context.Background(), "react", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"react"}, monitor.queries)
	assert.Equal(t, []bool{false}, monitor.fallback)
	assert.Equal(t, 2, monitor.evaluated)
	assert.Equal(t, 1, monitor.matched)
	assert.Equal(t, []int{1}, monitor.finished)
}

func TestFilter_FallbackForLongQuery(t *testing.T) {
	engine, err := query.NewEngine(query.WithMaxQueryLength(8))
	require.NoError(t, err)

	profiles, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	monitor := &recordingMonitor{}
	searcher, err := NewSearcher(profiles, engine, WithMonitor(monitor))
	require.NoError(t, err)
	defer searcher.Release()

	p := core.NewProfile(core.User{FullName: "Dana", Email: "dana@example.com"},
		core.Candidate{Bio: "react and vue"})
	_, err = profiles.AddProfiles(context.Background(), p)
	require.NoError(t, err)

	matches, err := searcher.Filter(context.Background(), "react AND vue", 0)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, []bool{true}, monitor.fallback)
}

func TestFilter_CancelledContext(t *testing.T) {
	f := newFixture(t)
	f.add(t, "alice", core.Candidate{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.searcher.Filter(ctx, "alice", 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilter_MonitorFinishedOnScanError(t *testing.T) {
	monitor := &recordingMonitor{}
	f := newFixture(t, WithMonitor(monitor))
	f.add(t, "alice", core.Candidate{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.searcher.Filter(ctx, "alice", 0)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"alice"}, monitor.queries)
	assert.Equal(t, []int{0}, monitor.finished)
}

func TestFilterSaved(t *testing.T) {
	f := newFixture(t)
	f.add(t, "alice", core.Candidate{Skills: []string{"kubernetes"}})
	f.add(t, "bob", core.Candidate{Skills: []string{"docker"}})

	ctx := context.Background()
	require.NoError(t, f.saved.SaveQuery(ctx, &core.SavedQuery{Name: "k8s", Query: "k8s"}))

	matches, err := f.searcher.FilterSaved(ctx, f.saved, "k8s", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, names(matches))

	_, err = f.searcher.FilterSaved(ctx, f.saved, "missing", 0)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = f.searcher.FilterSaved(ctx, nil, "k8s", 0)
	assert.Equal(t, ErrSavedQueryRepositoryRequired, err)
}
