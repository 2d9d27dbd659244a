package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/disa12311/cache-manager/internal/config"
	"github.com/disa12311/cache-manager/internal/core"
	"github.com/disa12311/cache-manager/internal/dashboard"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactive dashboard with auto-clean",
	Long: `Full-screen dashboard showing the live cache size. Re-measures on a
fixed cadence and, when auto-clean is enabled, triggers a cleaning pass
whenever the size crosses the threshold (30-second cooldown).`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Int("refresh", 1, "Refresh interval in seconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings, eng, log, err := setup()
	if err != nil {
		return err
	}

	refresh := time.Second
	if n, err := cmd.Flags().GetInt("refresh"); err == nil && n > 0 {
		refresh = time.Duration(n) * time.Second
	}

	if !core.IsWindows10OrAbove() {
		fmt.Fprintln(os.Stderr, "Warning: unsupported Windows version:", core.OSVersionString())
	}

	// Without a terminal there is nothing to render; print one
	// measurement and leave, same as `size`.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		report := eng.Measure()
		fmt.Printf("Cache size: %s (%.2f GB)\n", core.FormatSize(report.Bytes), report.GB())
		return nil
	}

	model := dashboard.New(eng, settings, settingsPath(), log, refresh)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Pick up settings edits made by other processes while we run.
	watcher, err := config.NewWatcher(settingsPath(), func(s *config.Settings) {
		p.Send(dashboard.SettingsReloadedMsg{Settings: s})
	})
	if err != nil {
		log.Warnf("config watcher unavailable: %v", err)
	} else {
		defer watcher.Stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
