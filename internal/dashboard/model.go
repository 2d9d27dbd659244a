package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/disa12311/cache-manager/internal/clean"
	"github.com/disa12311/cache-manager/internal/config"
	"github.com/disa12311/cache-manager/internal/core"
	"github.com/disa12311/cache-manager/internal/engine"
	"github.com/disa12311/cache-manager/internal/logging"
)

// Threshold slider bounds, matching what the settings UI has always
// offered. Values outside the range can still exist in the config file;
// the keys just clamp from wherever the value starts.
const (
	minThresholdGB = 1.0
	maxThresholdGB = 100.0
)

// ─── Messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type sizeMsg struct {
	report engine.SizeReport
}

type cleanDoneMsg struct {
	outcome clean.Outcome
	report  engine.SizeReport
}

// SettingsReloadedMsg is sent from outside the program (the config
// watcher) when another process edited the settings file.
type SettingsReloadedMsg struct {
	Settings *config.Settings
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for the cache manager dashboard.
type Model struct {
	eng      *engine.Engine
	settings *config.Settings
	cfgPath  string
	log      *logging.Logger

	report   engine.SizeReport
	measured bool
	cleaning bool
	status   string
	spinner  spinner.Model

	width    int
	height   int
	refresh  time.Duration
	quitting bool
}

// New creates a dashboard over the given engine and settings. refresh
// is the measurement cadence.
func New(eng *engine.Engine, settings *config.Settings, cfgPath string, log *logging.Logger, refresh time.Duration) Model {
	if refresh <= 0 {
		refresh = time.Second
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		eng:      eng,
		settings: settings,
		cfgPath:  cfgPath,
		log:      log,
		status:   "Ready",
		spinner:  sp,
		width:    80,
		height:   24,
		refresh:  refresh,
	}
}

func (m Model) doTick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) measure() tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		return sizeMsg{report: eng.Measure()}
	}
}

func (m Model) cleanNow() tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		outcome, report := eng.Clean()
		return cleanDoneMsg{outcome: outcome, report: report}
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	// Measure first; the sizeMsg handler starts the tick loop so
	// measurement and display stay strictly sequential.
	return tea.Batch(m.measure(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		if m.cleaning {
			// A pass is running; measuring the tree mid-delete would
			// just show a number that is already stale.
			return m, m.doTick()
		}
		return m, m.measure()

	case sizeMsg:
		m.report = msg.report
		m.measured = true

		if !m.cleaning && m.shouldAutoClean() {
			m.cleaning = true
			m.status = "Cleaning cache…"
			m.log.Infof("auto-clean triggered at %.2f GB (threshold %.0f GB)",
				m.report.GB(), m.settings.ThresholdGB)
			return m, tea.Batch(m.cleanNow(), m.doTick())
		}
		return m, m.doTick()

	case cleanDoneMsg:
		m.cleaning = false
		m.report = msg.report
		m.status = fmt.Sprintf("Cleaned %d files (%s)",
			msg.outcome.FilesRemoved, core.FormatSize(msg.outcome.BytesReclaimed))
		m.log.Infof("clean pass done: %d files, %s reclaimed",
			msg.outcome.FilesRemoved, core.FormatSize(msg.outcome.BytesReclaimed))
		return m, nil

	case SettingsReloadedMsg:
		m.settings = msg.Settings
		m.status = "Configuration reloaded"
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		if m.settings.ThresholdGB > minThresholdGB {
			m.settings.ThresholdGB--
		}
		return m, nil

	case "right", "l":
		if m.settings.ThresholdGB < maxThresholdGB {
			m.settings.ThresholdGB++
		}
		return m, nil

	case "a":
		m.settings.AutoClean = !m.settings.AutoClean
		return m, nil

	case "c":
		if m.cleaning {
			return m, nil
		}
		m.cleaning = true
		m.status = "Cleaning cache…"
		return m, m.cleanNow()

	case "s":
		if err := m.settings.Save(m.cfgPath); err != nil {
			m.status = "Error: " + err.Error()
			m.log.Errorf("save config: %v", err)
		} else {
			m.status = "Configuration saved"
		}
		return m, nil
	}

	return m, nil
}

func (m Model) shouldAutoClean() bool {
	age, ok := m.eng.LastCleanAge()
	return engine.ShouldAutoClean(m.report.GB(), m.settings.ThresholdGB,
		m.settings.AutoClean, age, ok)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}
