package search

import (
	"time"

	"github.com/poiesic/talentq/core"
)

// SearchMonitor provides hooks to observe the search process.
// Evaluated is called from worker goroutines, so implementations must be
// safe for concurrent use.
type SearchMonitor interface {
	Start(query string)
	Compiled(fallback bool)
	Evaluated(id core.ID, matched bool)
	Finish(matches []*core.Match, elapsed time.Duration)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) Compiled(_ bool)                         {}
func (n *noopMonitor) Evaluated(_ core.ID, _ bool)             {}
func (n *noopMonitor) Finish(_ []*core.Match, _ time.Duration) {}
