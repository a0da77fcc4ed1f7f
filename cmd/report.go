package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rollbook/rollbook/filter"
	"github.com/rollbook/rollbook/internal/app"
	"github.com/rollbook/rollbook/internal/report"
)

var (
	reportOutput string
	reportFilter string
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Short:   "Export a printable roster report",
	Long:    `Write a fixed-width roster listing with a summary block to a text file.`,
	GroupID: "analysis",
	Example: `  rollbook report
  rollbook report -o term1.txt
  rollbook report --filter 'grade == "F"' -o failing.txt`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", app.DefaultReportFile, "Report file (use - for stdout)")
	reportCmd.Flags().StringVarP(&reportFilter, "filter", "F", "", "Filter expression")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	match, err := filter.Compile(reportFilter)
	if err != nil {
		return err
	}

	s, _, err := openRoster()
	if err != nil {
		return err
	}

	students := filter.Apply(s.All(), match)
	if len(students) == 0 {
		fmt.Println("No records to export.")
		return nil
	}

	data := report.Build(students)

	if reportOutput == "-" {
		return report.WriteText(os.Stdout, data)
	}
	f, err := os.Create(reportOutput)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := report.WriteText(f, data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Exported report to '%s'\n", reportOutput)
	return nil
}
