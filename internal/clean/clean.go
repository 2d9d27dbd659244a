package clean

import (
	"os"
	"path/filepath"

	"github.com/disa12311/cache-manager/internal/whitelist"
)

// Outcome accumulates the result of one cleaning pass. A single Outcome
// is threaded through every cache root so the caller gets one tally.
type Outcome struct {
	FilesRemoved   int64
	BytesReclaimed int64
}

// Add folds another outcome into this one.
func (o *Outcome) Add(other Outcome) {
	o.FilesRemoved += other.FilesRemoved
	o.BytesReclaimed += other.BytesReclaimed
}

// Empty reports whether the pass removed nothing.
func (o Outcome) Empty() bool {
	return o.FilesRemoved == 0 && o.BytesReclaimed == 0
}

// CleanDir deletes as many files as possible under root and removes the
// directories that end up empty, adding counts to out. The root itself
// is never removed — the owning application keeps writing into it.
//
// Every per-entry failure is non-fatal: a locked file stays in place and
// is simply not counted, a directory that still has children survives
// its removal attempt. wl may be nil; protected paths are skipped whole.
func CleanDir(root string, wl *whitelist.Whitelist, out *Outcome) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		if wl.IsProtected(path) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.IsDir() {
			// Children first, then the directory itself. The remove only
			// succeeds once everything inside was deletable.
			CleanDir(path, wl, out)
			os.Remove(path)
			continue
		}

		// Capture the size before the delete; afterwards it is gone.
		size := info.Size()
		if err := os.Remove(path); err != nil {
			continue
		}
		out.FilesRemoved++
		out.BytesReclaimed += size
	}
}

// CleanAll runs CleanDir over every root in order and returns the
// combined outcome. Missing roots contribute nothing.
func CleanAll(roots []string, wl *whitelist.Whitelist) Outcome {
	var out Outcome
	for _, root := range roots {
		CleanDir(root, wl, &out)
	}
	return out
}
