package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/disa12311/cache-manager/internal/core"
	"github.com/disa12311/cache-manager/internal/scan"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean all cache directories now",
	Long:  "Run one cleaning pass over every discovered cache directory. Locked files are left in place.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, eng, log, err := setup()
		if err != nil {
			return err
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		yes, _ := cmd.Flags().GetBool("yes")

		before := eng.Measure()

		if dryRun {
			fmt.Printf("Would clean up to %s from %d directories:\n",
				core.FormatSize(before.Bytes), len(eng.Roots()))
			for i, size := range scan.RootSizes(eng.Roots()) {
				fmt.Printf("  %-60s %s\n", eng.Roots()[i], core.FormatSize(size))
			}
			return nil
		}

		if !yes {
			fmt.Printf("Clean %s from %d cache directories? [y/N] ",
				core.FormatSize(before.Bytes), len(eng.Roots()))
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		outcome, after := eng.Clean()
		log.Infof("manual clean: %d files, %s reclaimed",
			outcome.FilesRemoved, core.FormatSize(outcome.BytesReclaimed))

		fmt.Printf("Cleaned %d files (%s)\n",
			outcome.FilesRemoved, core.FormatSize(outcome.BytesReclaimed))
		fmt.Printf("Cache size now: %s\n", core.FormatSize(after.Bytes))
		return nil
	},
}

func init() {
	cleanCmd.Flags().Bool("dry-run", false, "Preview what would be removed without deleting")
	cleanCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
