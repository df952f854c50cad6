package walker

import "worldscout/internal/filter"

// Default values for walker options.
const (
	// DefaultConcurrency is the number of roots traversed in parallel.
	// Roots usually sit on the same disk, so a small pool keeps the scan
	// I/O-bound without thrashing the page cache.
	DefaultConcurrency = 4
)

// Warning reports a subtree that was skipped without aborting the scan.
type Warning struct {
	Path string // directory that could not be processed
	Err  error  // underlying failure (permission denied, stat race, ...)
}

// Options configures a Walker.
type Options struct {
	// Concurrency is the number of roots traversed concurrently.
	Concurrency int

	// FollowSymlinks enables descending through directory symlinks.
	// Off by default: cycle safety is guaranteed either way, but link
	// chasing makes scans of e.g. /proc or backup trees much noisier.
	FollowSymlinks bool

	// Exclude prunes matching directories before descent.
	Exclude *filter.Filter

	// OnWarning, when set, is invoked for every skipped subtree. It may be
	// called concurrently from multiple traversal workers.
	OnWarning func(Warning)

	// OnRootStart, when set, is invoked as a worker begins traversing a
	// root, once per supplied root. Same concurrency caveat as OnWarning.
	OnRootStart func(root string)
}

// DefaultOptions returns the default walker configuration.
func DefaultOptions() Options {
	return Options{
		Concurrency: DefaultConcurrency,
	}
}

// WithConcurrency sets the number of concurrent root traversals.
func (o Options) WithConcurrency(n int) Options {
	if n > 0 {
		o.Concurrency = n
	}
	return o
}

// WithFollowSymlinks enables or disables following directory symlinks.
func (o Options) WithFollowSymlinks(follow bool) Options {
	o.FollowSymlinks = follow
	return o
}

// WithExclude sets the directory exclusion filter.
func (o Options) WithExclude(f *filter.Filter) Options {
	o.Exclude = f
	return o
}

// WithOnWarning sets the warning callback.
func (o Options) WithOnWarning(fn func(Warning)) Options {
	o.OnWarning = fn
	return o
}

// WithOnRootStart sets the per-root traversal start callback.
func (o Options) WithOnRootStart(fn func(root string)) Options {
	o.OnRootStart = fn
	return o
}
