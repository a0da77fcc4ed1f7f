package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rollbook/rollbook/export"
	"github.com/rollbook/rollbook/filter"
)

var (
	listFilter string
	listFormat string
	listOutput string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List student records",
	Long:    `Display the roster in its current order, optionally filtered.`,
	GroupID: "records",
	Example: `  rollbook list
  rollbook list --filter 'average >= 75 && grade == "B"'
  rollbook list --format json
  rollbook list --format csv -o backup.csv`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "F", "", "Filter expression (e.g. 'average >= 75')")
	listCmd.Flags().StringVarP(&listFormat, "format", "T", "text", "Output format: text, json, csv")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(listFormat)
	if err != nil {
		return err
	}
	match, err := filter.Compile(listFilter)
	if err != nil {
		return err
	}

	s, _, err := openRoster()
	if err != nil {
		return err
	}

	students := filter.Apply(s.All(), match)
	if len(students) == 0 && format == export.FormatText {
		if listFilter != "" {
			fmt.Printf("No matches for %q.\n", listFilter)
		} else {
			fmt.Println("No records to display.")
		}
		return nil
	}

	out := os.Stdout
	if listOutput != "" && listOutput != "-" {
		out, err = os.Create(listOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	exporter := export.New(out, format)
	if err := exporter.Start(); err != nil {
		return err
	}
	for _, rec := range students {
		if err := exporter.Export(rec); err != nil {
			return err
		}
	}
	return exporter.Finish()
}
