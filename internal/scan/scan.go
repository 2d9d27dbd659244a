package scan

import (
	"os"
	"path/filepath"
)

// DirSize returns the total size in bytes of all regular files reachable
// from path, recursing into subdirectories without a depth limit.
//
// A missing or unlistable path counts as empty: many cache directories
// simply do not exist on a given machine and the caller must still get a
// number back. Entries whose metadata cannot be read are skipped the same
// way — a partial answer beats no answer for a cache meter.
func DirSize(path string) int64 {
	var total int64

	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// Permission denied or the entry vanished mid-walk — skip.
			continue
		}
		if info.IsDir() {
			total += DirSize(filepath.Join(path, entry.Name()))
		} else if info.Mode().IsRegular() {
			total += info.Size()
		}
	}

	return total
}

// RootSizes measures every root independently and returns the per-root
// byte counts in the same order. Roots that are missing or unreadable
// report zero rather than an error.
func RootSizes(roots []string) []int64 {
	sizes := make([]int64, len(roots))
	for i, root := range roots {
		sizes[i] = DirSize(root)
	}
	return sizes
}

// TotalSize sums DirSize across all roots. Nested roots double-count;
// the discovery table never produces nested paths, so this is accepted.
func TotalSize(roots []string) int64 {
	var total int64
	for _, root := range roots {
		total += DirSize(root)
	}
	return total
}
