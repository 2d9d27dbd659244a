package ui

import "github.com/charmbracelet/lipgloss"

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorGood    = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarn    = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorBad     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
)

// ─── Shared styles ───────────────────────────────────────────────────────────

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	GoodStyle = lipgloss.NewStyle().
			Foreground(ColorGood)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarn)

	BadStyle = lipgloss.NewStyle().
			Foreground(ColorBad)
)

// SizeStyle picks a color for the measured size relative to the
// threshold: green well below, yellow approaching, red at or past it.
func SizeStyle(sizeGB, thresholdGB float64) lipgloss.Style {
	switch {
	case sizeGB >= thresholdGB:
		return BadStyle
	case sizeGB >= thresholdGB*0.8:
		return WarnStyle
	default:
		return GoodStyle
	}
}
