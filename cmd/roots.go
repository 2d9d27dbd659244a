package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disa12311/cache-manager/internal/core"
)

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "List discovered cache directories",
	Long:  "Show every cache directory that exists on this machine along with its current size.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, eng, _, err := setup()
		if err != nil {
			return err
		}

		roots := eng.Roots()
		if len(roots) == 0 {
			fmt.Println("No cache directories found.")
			return nil
		}

		var total int64
		for i, size := range eng.MeasureRoots() {
			fmt.Printf("  %-60s %10s\n", roots[i], core.FormatSize(size))
			total += size
		}
		fmt.Printf("  %-60s %10s\n", "Total", core.FormatSize(total))
		return nil
	},
}
