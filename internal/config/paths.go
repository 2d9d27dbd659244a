package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// localAppData returns the local app data directory.
func localAppData() string {
	return os.Getenv("LOCALAPPDATA")
}

// appData returns the roaming app data directory.
func appData() string {
	return os.Getenv("APPDATA")
}

// winDir returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %WINDIR% is not set.
func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// candidateRoots returns every cache directory this tool knows about on
// the current platform, before existence filtering.
func candidateRoots() []string {
	if runtime.GOOS != "windows" {
		// Keeps the tool runnable (and testable) off Windows.
		home, _ := os.UserHomeDir()
		return []string{
			os.TempDir(),
			filepath.Join(home, ".cache"),
		}
	}

	local := localAppData()

	dirs := []string{
		os.TempDir(),
		filepath.Join(local, "Temp"),
		filepath.Join(local, "Microsoft", "Windows", "INetCache"),
		filepath.Join(winDir(), "SoftwareDistribution", "Download"),
		filepath.Join(winDir(), "Prefetch"),
		filepath.Join(local, "Google", "Chrome", "User Data", "Default", "Cache"),
		filepath.Join(local, "Microsoft", "Edge", "User Data", "Default", "Cache"),
	}

	// Firefox keeps its cache inside per-profile directories.
	profiles := filepath.Join(appData(), "Mozilla", "Firefox", "Profiles")
	if entries, err := os.ReadDir(profiles); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				dirs = append(dirs, filepath.Join(profiles, entry.Name(), "cache2"))
			}
		}
	}

	return dirs
}

// CacheRoots returns the cache directories that actually exist on this
// machine, deduplicated case-insensitively (%TEMP% usually points at
// %LOCALAPPDATA%\Temp) and in stable display order.
func CacheRoots() []string {
	return existingDirs(candidateRoots())
}

// existingDirs filters paths down to existing, distinct directories,
// preserving first-seen order.
func existingDirs(paths []string) []string {
	seen := make(map[string]bool)
	var roots []string

	for _, dir := range paths {
		cleaned := filepath.Clean(dir)
		key := strings.ToLower(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true

		info, err := os.Stat(cleaned)
		if err != nil || !info.IsDir() {
			continue
		}
		roots = append(roots, cleaned)
	}

	return roots
}
