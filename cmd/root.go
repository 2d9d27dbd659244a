package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disa12311/cache-manager/internal/config"
	"github.com/disa12311/cache-manager/internal/engine"
	"github.com/disa12311/cache-manager/internal/logging"
	"github.com/disa12311/cache-manager/internal/whitelist"
)

var (
	// Global flags
	debug   bool
	cfgPath string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "cachemgr",
	Short: "Measure and clean Windows cache directories",
	Long: `Cache Manager - keep well-known cache directories under control.

Measures the aggregate size of temp and browser cache directories and
reclaims space when a configured threshold is crossed, either on demand
or automatically with a 30-second cooldown between passes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: open the interactive dashboard.
		return runWatch(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Mirror the log to stderr")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Settings file (default: user config dir)")

	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(rootsCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cachemgr %s (%s) built %s\n", appVersion, appCommit, appDate)
	},
}

// settingsPath resolves the --config override.
func settingsPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	return config.Path()
}

// setup wires the pieces every command needs: persisted settings, the
// discovered cache roots, and an engine over them.
func setup() (*config.Settings, *engine.Engine, *logging.Logger, error) {
	settings, err := config.Load(settingsPath())
	if err != nil {
		return nil, nil, nil, err
	}

	level := logging.LevelInfo
	if debug {
		level = logging.LevelDebug
	}
	log := logging.New(config.Dir(), level, debug)

	roots := config.CacheRoots()
	wl := whitelist.New(settings.Protected)
	eng := engine.New(roots, wl)

	log.Debugf("discovered %d cache roots", len(roots))
	return settings, eng, log, nil
}
