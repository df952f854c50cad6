// Package walker implements the deduplicating directory traversal at the
// heart of worldscout. It descends arbitrarily deep trees from multiple
// search roots, reports every directory holding a level.dat file exactly
// once across the whole run, refuses symlink cycles, and treats unreadable
// subtrees as warnings rather than failures.
package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"worldscout/internal/world"
)

// canonicalIdentity is the portable fallback identity: the path with
// symlinks and relative segments resolved.
func canonicalIdentity(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Walker traverses search roots and streams discovered worlds.
//
// A Walker performs a single pass: the visited and emitted sets accumulate
// for the lifetime of one Walk and are not reset, so a Walker must not be
// reused for a second run.
type Walker struct {
	opts Options

	// mu guards visited, emitted and warnings. Check-then-insert on the
	// sets must be atomic: two workers reaching the same directory through
	// overlapping roots race to claim it, and exactly one may win.
	mu       sync.Mutex
	visited  map[string]struct{}
	emitted  map[string]struct{}
	warnings []Warning
}

// New creates a Walker with the given options.
func New(opts Options) *Walker {
	if opts.Concurrency < 1 {
		opts.Concurrency = DefaultConcurrency
	}
	return &Walker{
		opts:    opts,
		visited: make(map[string]struct{}),
		emitted: make(map[string]struct{}),
	}
}

// WalkAll traverses all roots and returns the discovered worlds after the
// scan completes. This is a blocking operation.
func (w *Walker) WalkAll(ctx context.Context, roots []string) []world.World {
	var worlds []world.World
	for found := range w.Walk(ctx, roots) {
		worlds = append(worlds, found)
	}
	return worlds
}

// Walk traverses the given roots and streams each discovered world.
// Every world is emitted at most once no matter how many supplied roots
// overlap or how many paths lead to it. The returned channel is closed
// when every root has been fully traversed or the context is canceled.
//
// With Concurrency == 1 the emission order is deterministic: roots in the
// given order, directory entries in lexicographic order. With more workers
// the emitted set of worlds is still deterministic, but their order is not.
func (w *Walker) Walk(ctx context.Context, roots []string) <-chan world.World {
	results := make(chan world.World, w.opts.Concurrency)

	go func() {
		defer close(results)

		jobs := make(chan string, len(roots))
		for _, root := range roots {
			jobs <- root
		}
		close(jobs)

		workers := w.opts.Concurrency
		if workers > len(roots) {
			workers = len(roots)
		}
		if workers < 1 {
			workers = 1
		}

		g, ctx := errgroup.WithContext(ctx)
		for i := 0; i < workers; i++ {
			g.Go(func() error {
				for root := range jobs {
					w.walkRoot(ctx, root, results)
				}
				return nil
			})
		}
		_ = g.Wait()
	}()

	return results
}

// walkRoot runs a depth-first traversal of one root with an explicit stack,
// so adversarially deep trees cannot overflow the call stack.
func (w *Walker) walkRoot(ctx context.Context, root string, results chan<- world.World) {
	if w.opts.OnRootStart != nil {
		w.opts.OnRootStart(root)
	}

	stack := []string{root}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return
		default:
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id, err := identity(dir)
		if err != nil {
			w.warn(dir, err)
			continue
		}
		// Claiming the identity before descent doubles as cycle
		// protection: any symlink chain leading back here resolves to an
		// identity that is already taken.
		if !w.markVisited(id) {
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			w.warn(dir, err)
			continue
		}

		if hasLevelDat(entries) && w.markEmitted(id) {
			select {
			case results <- world.New(dir, root):
			case <-ctx.Done():
				return
			}
		}

		// os.ReadDir returns entries sorted by name; pushing in reverse
		// keeps the pop order lexicographic. Worlds are descended into
		// like any other directory: saves can nest, and only reporting is
		// deduplicated, never traversal.
		for i := len(entries) - 1; i >= 0; i-- {
			sub, ok := w.resolveDir(dir, entries[i])
			if !ok {
				continue
			}
			if w.excluded(root, sub) {
				continue
			}
			stack = append(stack, sub)
		}
	}
}

// hasLevelDat reports whether the directory listing contains level.dat as a
// regular file.
func hasLevelDat(entries []os.DirEntry) bool {
	for _, e := range entries {
		if e.Name() == world.LevelDatName && e.Type().IsRegular() {
			return true
		}
	}
	return false
}

// resolveDir returns the traversable directory path for an entry, or
// ok=false for files, refused symlinks, and anything else that should not
// be descended into.
func (w *Walker) resolveDir(dir string, entry os.DirEntry) (string, bool) {
	path := filepath.Join(dir, entry.Name())

	if entry.IsDir() {
		return path, true
	}
	if entry.Type()&fs.ModeSymlink == 0 || !w.opts.FollowSymlinks {
		return "", false
	}

	// Resolve the link before pushing it so the walked path is canonical
	// and the identity check sees the real target, not the link's spelling.
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		// Broken link. Skip the entry, keep the scan going.
		w.warn(path, err)
		return "", false
	}
	info, err := os.Stat(target)
	if err != nil {
		w.warn(path, err)
		return "", false
	}
	if !info.IsDir() {
		return "", false
	}
	return target, true
}

// excluded reports whether the exclusion filter prunes this directory.
// Matching happens on the slash-normalized path relative to the root, with
// the absolute path as fallback when no relative form exists (symlink
// targets outside the root).
func (w *Walker) excluded(root, path string) bool {
	if w.opts.Exclude == nil {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return w.opts.Exclude.Match(filepath.ToSlash(rel))
}

// markVisited atomically claims a directory identity for traversal.
// It returns false if some branch already owns it.
func (w *Walker) markVisited(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.visited[id]; ok {
		return false
	}
	w.visited[id] = struct{}{}
	return true
}

// markEmitted atomically claims a world identity for reporting.
func (w *Walker) markEmitted(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.emitted[id]; ok {
		return false
	}
	w.emitted[id] = struct{}{}
	return true
}

func (w *Walker) warn(path string, err error) {
	warning := Warning{Path: path, Err: err}
	w.mu.Lock()
	w.warnings = append(w.warnings, warning)
	w.mu.Unlock()
	if w.opts.OnWarning != nil {
		w.opts.OnWarning(warning)
	}
}

// Visited returns the number of distinct directories processed so far.
func (w *Walker) Visited() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.visited)
}

// Emitted returns the number of distinct worlds reported so far.
func (w *Walker) Emitted() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.emitted)
}

// Warnings returns a copy of all warnings recorded so far.
func (w *Walker) Warnings() []Warning {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Warning, len(w.warnings))
	copy(out, w.warnings)
	return out
}
