package dashboard

import (
	"fmt"
	"strings"

	"github.com/disa12311/cache-manager/internal/core"
	"github.com/disa12311/cache-manager/internal/ui"
)

const sliderWidth = 40

func (m Model) renderView() string {
	var s strings.Builder

	s.WriteString("\n")
	s.WriteString("  " + ui.TitleStyle.Render("Cache Manager"))
	s.WriteString("\n\n")

	// Current aggregate size.
	if !m.measured {
		s.WriteString("  " + ui.MutedStyle.Italic(true).Render("Measuring caches…"))
		s.WriteString("\n")
	} else {
		sizeStr := fmt.Sprintf("%.2f GB", m.report.GB())
		style := ui.SizeStyle(m.report.GB(), m.settings.ThresholdGB)
		s.WriteString(fmt.Sprintf("  Current cache size: %s", style.Bold(true).Render(sizeStr)))
		s.WriteString("\n")
	}

	// Status line, with spinner while a pass runs.
	if m.cleaning {
		s.WriteString("  " + m.spinner.View() + ui.MutedStyle.Render(m.status))
	} else {
		s.WriteString("  " + ui.MutedStyle.Render(m.status))
	}
	s.WriteString("\n\n")

	// Threshold slider.
	s.WriteString("  Threshold: " + m.renderSlider())
	s.WriteString(ui.ValueStyle.Render(fmt.Sprintf(" %.0f GB", m.settings.ThresholdGB)))
	s.WriteString("\n")
	s.WriteString("  " + ui.MutedStyle.Render(
		fmt.Sprintf("Auto-clean when cache reaches %.0f GB", m.settings.ThresholdGB)))
	s.WriteString("\n\n")

	// Auto-clean checkbox.
	check := "[ ]"
	if m.settings.AutoClean {
		check = ui.GoodStyle.Render("[x]")
	}
	s.WriteString(fmt.Sprintf("  %s Auto-clean enabled (30s cooldown)", check))
	s.WriteString("\n\n")

	s.WriteString(m.renderFooter())
	return s.String()
}

// renderSlider draws the threshold position on a fixed-width track.
func (m Model) renderSlider() string {
	frac := (m.settings.ThresholdGB - minThresholdGB) / (maxThresholdGB - minThresholdGB)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(sliderWidth-1) + 0.5)

	var b strings.Builder
	b.WriteString(ui.MutedStyle.Render("["))
	for i := 0; i < sliderWidth; i++ {
		if i == filled {
			b.WriteString(ui.ValueStyle.Render("●"))
		} else {
			b.WriteString(ui.MutedStyle.Render("─"))
		}
	}
	b.WriteString(ui.MutedStyle.Render("]"))
	return b.String()
}

func (m Model) renderFooter() string {
	var s strings.Builder

	if age, ok := m.eng.LastCleanAge(); ok {
		s.WriteString("  " + ui.MutedStyle.Render("Last cleaned: "+core.FormatAge(age)))
		s.WriteString("\n")
	}

	if vol, ok := m.eng.VolumeUsage(); ok {
		s.WriteString("  " + ui.MutedStyle.Render(fmt.Sprintf(
			"Volume %s: %s free of %s",
			vol.Path, core.FormatSize(int64(vol.FreeBytes)), core.FormatSize(int64(vol.TotalBytes)))))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString("  " + ui.MutedStyle.Render(
		"←/→ threshold · a auto-clean · c clean now · s save · q quit"))
	s.WriteString("\n")
	return s.String()
}
