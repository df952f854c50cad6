package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhases(t *testing.T) {
	t.Parallel()

	t.Run("UnfinishedPhasesReportZero", func(t *testing.T) {
		t.Parallel()
		s := New()
		assert.Zero(t, s.ResolveDuration())
		assert.Zero(t, s.WalkDuration())
		assert.Zero(t, s.TotalDuration())
		assert.Zero(t, s.DirsPerSecond())
	})

	t.Run("FullRun", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.StartResolve()
		s.EndResolve(2)
		s.StartWalk()
		time.Sleep(time.Millisecond)
		s.EndWalk(120, 3, 1)

		assert.Equal(t, 2, s.RootsResolved)
		assert.Equal(t, 120, s.DirsVisited)
		assert.Equal(t, 3, s.WorldsFound)
		assert.Equal(t, 1, s.Warnings)

		assert.Greater(t, s.WalkDuration(), time.Duration(0))
		assert.GreaterOrEqual(t, s.TotalDuration(), s.WalkDuration())
		assert.Greater(t, s.DirsPerSecond(), 0.0)

		// EndWalk snapshots memory counters.
		assert.NotZero(t, s.TotalAlloc)
		assert.NotZero(t, s.NumGoroutine)
	})
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30.0s"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.in))
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatBytes(tc.in))
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	s := New()
	s.StartResolve()
	s.EndResolve(1)
	s.StartWalk()
	s.EndWalk(10, 2, 0)

	out := s.String()
	assert.Contains(t, out, "Performance Statistics")
	assert.Contains(t, out, "Dirs visited:")
	assert.Contains(t, out, "Worlds found:")
	// Warnings line appears only when warnings happened.
	assert.NotContains(t, out, "Warnings:")
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	s := New()
	s.StartResolve()
	s.EndResolve(1)
	s.StartWalk()
	s.EndWalk(10, 2, 1)

	m := s.ToJSON()
	require.Contains(t, m, "timing")
	require.Contains(t, m, "throughput")
	require.Contains(t, m, "memory")

	throughput, ok := m["throughput"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 10, throughput["dirs_visited"])
	assert.Equal(t, 2, throughput["worlds_found"])
	assert.Equal(t, 1, throughput["warnings"])
}
