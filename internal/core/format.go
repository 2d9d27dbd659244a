package core

import (
	"fmt"
	"time"
)

// FormatSize renders a byte count as a human-readable string using
// binary units (the same units the threshold is expressed in).
func FormatSize(bytes int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
		gib = 1 << 30
		tib = 1 << 40
	)

	switch {
	case bytes >= tib:
		return fmt.Sprintf("%.2f TB", float64(bytes)/tib)
	case bytes >= gib:
		return fmt.Sprintf("%.2f GB", float64(bytes)/gib)
	case bytes >= mib:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mib)
	case bytes >= kib:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kib)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatAge renders an elapsed duration for the "last cleaned" line.
func FormatAge(age time.Duration) string {
	switch {
	case age < time.Minute:
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		return fmt.Sprintf("%dh %dm ago", int(age.Hours()), int(age.Minutes())%60)
	}
}
