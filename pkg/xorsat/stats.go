package xorsat

// stats.go: statistics for extraction and search

import (
	"fmt"
	"sync"
	"time"
)

// Stats holds counters describing one extraction and search.
type Stats struct {
	// Extraction statistics
	SourceEquations int           // Raw equations fed to the extractor
	Derived         int           // Successful (equation, variable) derivations
	Discarded       int           // Derivations dropped as unsolvable
	Fallbacks       int           // Source equations kept without substitution
	Constants       int           // Distinct constant equations after flattening
	Equations       int           // Distinct partial equations after flattening
	ExtractTime     time.Duration // Time spent extracting

	// Search statistics
	FreeVariables  int           // Variables not fixed by constants
	NodesExplored  int           // Search nodes visited
	Pruned         int           // Branches cut by a violated equation
	SolutionsFound int           // Complete satisfying assignments
	MaxDepth       int           // Deepest branching level reached
	SearchTime     time.Duration // Time spent in search
}

func (s Stats) String() string {
	return fmt.Sprintf("extract: %d source, %d derived, %d discarded, %d fallback, %d constants, %d equations in %s; "+
		"search: %d free, %d nodes, %d pruned, %d solutions, depth %d in %s",
		s.SourceEquations, s.Derived, s.Discarded, s.Fallbacks, s.Constants, s.Equations, s.ExtractTime,
		s.FreeVariables, s.NodesExplored, s.Pruned, s.SolutionsFound, s.MaxDepth, s.SearchTime)
}

// Monitor accumulates Stats. It is safe for concurrent use, so one Monitor
// may be shared by several solves and read by a metrics collector.
type Monitor struct {
	mu    sync.Mutex
	stats Stats
	runs  int
}

// NewMonitor creates an empty monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Snapshot returns a copy of the accumulated statistics.
func (m *Monitor) Snapshot() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Runs returns how many searches have been recorded.
func (m *Monitor) Runs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}

// RecordExtraction adds the extraction counters of s.
func (m *Monitor) RecordExtraction(s Stats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.SourceEquations += s.SourceEquations
	m.stats.Derived += s.Derived
	m.stats.Discarded += s.Discarded
	m.stats.Fallbacks += s.Fallbacks
	m.stats.Constants += s.Constants
	m.stats.Equations += s.Equations
	m.stats.ExtractTime += s.ExtractTime
}

// RecordSearch adds the search counters of s.
func (m *Monitor) RecordSearch(s Stats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs++
	m.stats.FreeVariables += s.FreeVariables
	m.stats.NodesExplored += s.NodesExplored
	m.stats.Pruned += s.Pruned
	m.stats.SolutionsFound += s.SolutionsFound
	if s.MaxDepth > m.stats.MaxDepth {
		m.stats.MaxDepth = s.MaxDepth
	}
	m.stats.SearchTime += s.SearchTime
}
