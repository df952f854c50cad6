// Package stats provides performance tracking for scan runs. It captures
// timing for the resolve and walk phases, traversal counters, and memory
// usage so slow scans of huge trees can be diagnosed.
package stats

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Stats holds performance metrics for one scan.
type Stats struct {
	// Timing for each phase
	ResolveStart time.Time
	ResolveEnd   time.Time
	WalkStart    time.Time
	WalkEnd      time.Time

	// Counts
	RootsResolved int
	DirsVisited   int
	WorldsFound   int
	Warnings      int

	// Memory stats (captured at end)
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	NumGoroutine int
}

// New creates a new Stats instance.
func New() *Stats {
	return &Stats{}
}

// StartResolve marks the beginning of the root resolution phase.
func (s *Stats) StartResolve() {
	s.ResolveStart = time.Now()
}

// EndResolve marks the end of the root resolution phase.
func (s *Stats) EndResolve(rootsResolved int) {
	s.ResolveEnd = time.Now()
	s.RootsResolved = rootsResolved
}

// StartWalk marks the beginning of the traversal phase.
func (s *Stats) StartWalk() {
	s.WalkStart = time.Now()
}

// EndWalk marks the end of the traversal phase and captures memory stats.
func (s *Stats) EndWalk(dirsVisited, worldsFound, warnings int) {
	s.WalkEnd = time.Now()
	s.DirsVisited = dirsVisited
	s.WorldsFound = worldsFound
	s.Warnings = warnings
	s.captureMemoryStats()
}

func (s *Stats) captureMemoryStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.HeapAlloc = m.HeapAlloc
	s.TotalAlloc = m.TotalAlloc
	s.NumGC = m.NumGC
	s.NumGoroutine = runtime.NumGoroutine()
}

// ResolveDuration returns the time spent resolving roots.
func (s *Stats) ResolveDuration() time.Duration {
	if s.ResolveEnd.IsZero() {
		return 0
	}
	return s.ResolveEnd.Sub(s.ResolveStart)
}

// WalkDuration returns the time spent walking the trees.
func (s *Stats) WalkDuration() time.Duration {
	if s.WalkEnd.IsZero() {
		return 0
	}
	return s.WalkEnd.Sub(s.WalkStart)
}

// TotalDuration returns the total time from resolve start to walk end.
func (s *Stats) TotalDuration() time.Duration {
	if s.WalkEnd.IsZero() {
		return 0
	}
	return s.WalkEnd.Sub(s.ResolveStart)
}

// DirsPerSecond returns the traversal throughput.
func (s *Stats) DirsPerSecond() float64 {
	walkDur := s.WalkDuration()
	if walkDur == 0 || s.DirsVisited == 0 {
		return 0
	}
	return float64(s.DirsVisited) / walkDur.Seconds()
}

// FormatDuration formats a duration for display.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%.1fs", int(d.Minutes()), d.Seconds()-float64(int(d.Minutes())*60))
}

// FormatBytes formats bytes for human-readable display.
func FormatBytes(bytes uint64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// String returns a formatted string representation of the stats.
func (s *Stats) String() string {
	var b strings.Builder

	total := s.TotalDuration()

	b.WriteString("\n=== Performance Statistics ===\n\n")

	b.WriteString("Timing:\n")
	b.WriteString(fmt.Sprintf("  Resolve roots: %8s", FormatDuration(s.ResolveDuration())))
	if total > 0 {
		b.WriteString(fmt.Sprintf("  (%4.1f%%)", float64(s.ResolveDuration())/float64(total)*100))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Walk trees:    %8s", FormatDuration(s.WalkDuration())))
	if total > 0 {
		b.WriteString(fmt.Sprintf("  (%4.1f%%)", float64(s.WalkDuration())/float64(total)*100))
	}
	b.WriteString("\n")

	b.WriteString("  ─────────────────────────\n")
	b.WriteString(fmt.Sprintf("  Total:         %8s\n", FormatDuration(total)))

	b.WriteString("\nThroughput:\n")
	b.WriteString(fmt.Sprintf("  Roots resolved:    %5d\n", s.RootsResolved))
	b.WriteString(fmt.Sprintf("  Dirs visited:      %5d\n", s.DirsVisited))
	b.WriteString(fmt.Sprintf("  Worlds found:      %5d\n", s.WorldsFound))
	if s.Warnings > 0 {
		b.WriteString(fmt.Sprintf("  Warnings:          %5d\n", s.Warnings))
	}
	b.WriteString(fmt.Sprintf("  Dirs/second:       %5.1f\n", s.DirsPerSecond()))

	b.WriteString("\nMemory:\n")
	b.WriteString(fmt.Sprintf("  Heap in use:   %8s\n", FormatBytes(s.HeapAlloc)))
	b.WriteString(fmt.Sprintf("  Total alloc:   %8s\n", FormatBytes(s.TotalAlloc)))
	b.WriteString(fmt.Sprintf("  GC cycles:     %8d\n", s.NumGC))
	b.WriteString(fmt.Sprintf("  Goroutines:    %8d\n", s.NumGoroutine))

	return b.String()
}

// ToJSON returns a map suitable for JSON serialization.
func (s *Stats) ToJSON() map[string]any {
	return map[string]any{
		"timing": map[string]any{
			"resolve_ms": s.ResolveDuration().Milliseconds(),
			"walk_ms":    s.WalkDuration().Milliseconds(),
			"total_ms":   s.TotalDuration().Milliseconds(),
		},
		"throughput": map[string]any{
			"roots_resolved":  s.RootsResolved,
			"dirs_visited":    s.DirsVisited,
			"worlds_found":    s.WorldsFound,
			"warnings":        s.Warnings,
			"dirs_per_second": s.DirsPerSecond(),
		},
		"memory": map[string]any{
			"heap_bytes":  s.HeapAlloc,
			"total_bytes": s.TotalAlloc,
			"gc_cycles":   s.NumGC,
			"goroutines":  s.NumGoroutine,
		},
	}
}
