package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/disa12311/cache-manager/internal/core"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Measure the aggregate cache size",
	Long:  "Sum the size of every discovered cache directory and print the total.",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, eng, _, err := setup()
		if err != nil {
			return err
		}

		report := eng.Measure()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out := struct {
				Bytes       int64   `json:"bytes"`
				GB          float64 `json:"gb"`
				ThresholdGB float64 `json:"threshold_gb"`
				Roots       int     `json:"roots"`
			}{report.Bytes, report.GB(), settings.ThresholdGB, len(eng.Roots())}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Printf("Cache size: %s (%.2f GB) across %d directories\n",
			core.FormatSize(report.Bytes), report.GB(), len(eng.Roots()))
		fmt.Printf("Threshold:  %.0f GB\n", settings.ThresholdGB)

		if vol, ok := eng.VolumeUsage(); ok {
			fmt.Printf("Volume:     %s free of %s on %s\n",
				core.FormatSize(int64(vol.FreeBytes)), core.FormatSize(int64(vol.TotalBytes)), vol.Path)
		}
		return nil
	},
}

func init() {
	sizeCmd.Flags().Bool("json", false, "Output as JSON")
}
