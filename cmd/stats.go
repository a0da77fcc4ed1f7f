package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rollbook/rollbook/stats"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show class statistics",
	Long:    `Display the class average, topper, lowest scorer, and grade distribution.`,
	GroupID: "analysis",
	Example: `  rollbook stats
  rollbook stats -f archive.csv`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	s, _, err := openRoster()
	if err != nil {
		return err
	}
	if s.Count() == 0 {
		fmt.Println("No records.")
		return nil
	}

	stats.Print(os.Stdout, stats.Compute(s.All()))
	return nil
}
