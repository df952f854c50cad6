package roots

import (
	"os"
	"path/filepath"
	"runtime"
)

// Defaults returns the ordered platform-specific candidate roots used when
// the user supplies no paths: the launcher's .minecraft directory first,
// then the home directory, then (only when exhaustive is set) the volume
// root. The list is candidates only; Resolve decides which ones exist.
func Defaults(exhaustive bool) []string {
	return defaultsFor(runtime.GOOS, exhaustive)
}

// defaultsFor is split out so tests can cover every platform branch on any
// host.
func defaultsFor(goos string, exhaustive bool) []string {
	var candidates []string

	if mc := minecraftDir(goos); mc != "" {
		candidates = append(candidates, mc)
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, home)
	}
	if exhaustive {
		candidates = append(candidates, volumeRoot(goos))
	}
	return candidates
}

// minecraftDir returns the launcher's standard data directory for the
// platform, per https://minecraft.wiki/w/.minecraft, or "" if the base
// location cannot be determined.
func minecraftDir(goos string) string {
	switch goos {
	case "windows":
		// %APPDATA%\.minecraft
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, ".minecraft")
		}
		return ""
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", "minecraft")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".minecraft")
	}
}

// volumeRoot returns the broadest possible search root for the platform.
func volumeRoot(goos string) string {
	if goos == "windows" {
		drive := os.Getenv("SystemDrive")
		if drive == "" {
			drive = "C:"
		}
		return drive + `\`
	}
	return "/"
}
