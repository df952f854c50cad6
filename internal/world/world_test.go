package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("CapturesLevelDatMetadata", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		dir := filepath.Join(root, "Skyblock")
		require.NoError(t, os.Mkdir(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, LevelDatName), []byte("12345678"), 0o644))

		w := New(dir, root)
		assert.Equal(t, dir, w.Path)
		assert.Equal(t, root, w.Root)
		assert.Equal(t, "Skyblock", w.Name)
		assert.Equal(t, int64(8), w.LevelDatSize)
		assert.False(t, w.ModTime.IsZero())
	})

	t.Run("VanishedLevelDatLeavesZeroMetadata", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		dir := filepath.Join(root, "bare")
		require.NoError(t, os.Mkdir(dir, 0o755))

		w := New(dir, root)
		assert.Equal(t, dir, w.Path)
		assert.Equal(t, "bare", w.Name)
		assert.Zero(t, w.LevelDatSize)
		assert.True(t, w.ModTime.IsZero())
	})
}

func TestSortByPath(t *testing.T) {
	t.Parallel()

	worlds := []World{
		{Path: "/c"},
		{Path: "/a"},
		{Path: "/b"},
	}
	SortByPath(worlds)
	assert.Equal(t, []string{"/a", "/b", "/c"}, Paths(worlds))
}

func TestPaths(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Paths(nil))
	assert.Equal(t, []string{"/x", "/y"}, Paths([]World{{Path: "/x"}, {Path: "/y"}}))
}
