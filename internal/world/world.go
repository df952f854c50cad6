// Package world defines the record type for a discovered Minecraft save world.
// A world is any directory with a regular file named level.dat as a direct
// child; the file's contents are never parsed.
package world

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LevelDatName is the marker file that identifies a world directory.
const LevelDatName = "level.dat"

// World describes one discovered save-world directory.
type World struct {
	// Path is the canonical path of the directory containing level.dat.
	Path string

	// Root is the search root this world was found under.
	Root string

	// Name is the base name of the world directory, which is what the
	// Minecraft launcher displays as the save name.
	Name string

	// LevelDatSize is the size of the level.dat file in bytes.
	LevelDatSize int64

	// ModTime is the modification time of level.dat.
	ModTime time.Time
}

// New builds a World for dir (already canonical) found under root.
// Metadata comes from a single Stat of the level.dat file; if the stat
// fails (e.g. the file vanished mid-scan), the metadata fields stay zero
// but the world is still reported.
func New(dir, root string) World {
	w := World{
		Path: dir,
		Root: root,
		Name: filepath.Base(dir),
	}
	if info, err := os.Stat(filepath.Join(dir, LevelDatName)); err == nil {
		w.LevelDatSize = info.Size()
		w.ModTime = info.ModTime()
	}
	return w
}

// SortByPath orders worlds lexicographically by path, in place.
// Used to make concurrent-scan output stable for reports.
func SortByPath(worlds []World) {
	sort.Slice(worlds, func(i, j int) bool {
		return worlds[i].Path < worlds[j].Path
	})
}

// Paths returns just the directory paths, in the given order.
func Paths(worlds []World) []string {
	paths := make([]string, len(worlds))
	for i, w := range worlds {
		paths[i] = w.Path
	}
	return paths
}
