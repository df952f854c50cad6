//go:build unix

package walker

import (
	"fmt"
	"os"
	"syscall"
)

// identity returns the filesystem-level identity of a directory. On Unix
// this is the device+inode pair, so the same physical directory compares
// equal no matter which path (bind mount, symlink, overlapping root) it was
// reached through.
func identity(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return fmt.Sprintf("%d:%d", st.Dev, st.Ino), nil
	}
	return canonicalIdentity(path)
}
