package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/talentq/core"
)

func TestMonitorSearch(t *testing.T) {
	m, err := NewMonitor(prometheus.NewRegistry())
	require.NoError(t, err)

	m.Start("react")
	m.Compiled(false)
	m.Evaluated(1, true)
	m.Evaluated(2, false)
	m.Evaluated(3, true)
	m.Finish([]*core.Match{{}, {}}, 20*time.Millisecond)

	m.Compiled(true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.searchesTotal.WithLabelValues(ModeBoolean)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searchesTotal.WithLabelValues(ModeFallback)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.candidatesEvaluated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.candidateMatches))
	assert.Equal(t, 1, testutil.CollectAndCount(m.searchDuration))
}

func TestMonitorImport(t *testing.T) {
	m, err := NewMonitor(prometheus.NewRegistry())
	require.NoError(t, err)

	m.FileImported("a.yaml", 3, 1)
	m.FileImported("b.yaml", 2, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.importFilesTotal))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.profilesImported))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.profilesSkipped))
}

func TestNewMonitorRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMonitor(reg)
	require.NoError(t, err)
	m.Compiled(false)

	count, err := testutil.GatherAndCount(reg, "talentq_searches_total", "talentq_candidates_evaluated_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = NewMonitor(reg)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}
