package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disa12311/cache-manager/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long:  "Show the persisted settings, or change the threshold and auto-clean flag.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settingsPath()

		if reset, _ := cmd.Flags().GetBool("reset"); reset {
			s := &config.Settings{
				ThresholdGB: config.DefaultThresholdGB,
				AutoClean:   config.DefaultAutoClean,
			}
			if err := s.Save(path); err != nil {
				return err
			}
			fmt.Println("Settings reset to defaults.")
			return nil
		}

		settings, err := config.Load(path)
		if err != nil {
			return err
		}

		changed := false
		if cmd.Flags().Changed("threshold") {
			settings.ThresholdGB, _ = cmd.Flags().GetFloat64("threshold")
			changed = true
		}
		if cmd.Flags().Changed("auto-clean") {
			settings.AutoClean, _ = cmd.Flags().GetBool("auto-clean")
			changed = true
		}
		if cmd.Flags().Changed("protect") {
			settings.Protected, _ = cmd.Flags().GetStringSlice("protect")
			changed = true
		}

		if changed {
			if err := settings.Save(path); err != nil {
				return err
			}
		}

		fmt.Printf("Config file:  %s\n", path)
		fmt.Printf("Threshold:    %.1f GB\n", settings.ThresholdGB)
		fmt.Printf("Auto-clean:   %v\n", settings.AutoClean)
		if len(settings.Protected) > 0 {
			fmt.Printf("Protected:    %v\n", settings.Protected)
		}
		return nil
	},
}

func init() {
	configCmd.Flags().Float64("threshold", config.DefaultThresholdGB, "Auto-clean threshold in GB")
	configCmd.Flags().Bool("auto-clean", config.DefaultAutoClean, "Enable automatic cleaning")
	configCmd.Flags().StringSlice("protect", nil, "Whitelist patterns that survive cleaning")
	configCmd.Flags().Bool("reset", false, "Reset settings to defaults")
}
