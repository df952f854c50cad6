//go:build !unix

package walker

// identity returns the filesystem-level identity of a directory. Without
// portable inode access the canonicalized path string stands in: symlinks
// and relative segments are resolved, so two paths naming the same physical
// directory still compare equal.
func identity(path string) (string, error) {
	return canonicalIdentity(path)
}
