package whitelist

import (
	"path/filepath"
	"strings"

	"github.com/IGLOU-EU/go-wildcard"
)

// Whitelist holds glob-style patterns for paths that must survive a
// cleaning pass. Matching is case-insensitive since NTFS is.
type Whitelist struct {
	patterns []string
}

// New builds a Whitelist from patterns. Patterns match either the full
// path or the base name, so both "*.log" and "C:\Temp\keep\*" work.
// Empty patterns are dropped.
func New(patterns []string) *Whitelist {
	var cleaned []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		cleaned = append(cleaned, strings.ToLower(filepath.ToSlash(p)))
	}
	return &Whitelist{patterns: cleaned}
}

// IsProtected reports whether path matches any whitelist pattern.
func (w *Whitelist) IsProtected(path string) bool {
	if w == nil || len(w.patterns) == 0 {
		return false
	}

	full := strings.ToLower(filepath.ToSlash(path))
	base := strings.ToLower(filepath.Base(path))

	for _, pattern := range w.patterns {
		if wildcard.Match(pattern, full) || wildcard.Match(pattern, base) {
			return true
		}
	}
	return false
}

// Len returns the number of active patterns.
func (w *Whitelist) Len() int {
	if w == nil {
		return 0
	}
	return len(w.patterns)
}
