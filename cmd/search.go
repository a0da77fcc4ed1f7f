package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rollbook/rollbook/export"
)

var (
	searchRoll int
	searchName string
)

var searchCmd = &cobra.Command{
	Use:     "search",
	Short:   "Search records by roll or name",
	Long:    `Look up a record by roll number, or find records whose name contains a substring (case-insensitive).`,
	GroupID: "records",
	Example: `  rollbook search --roll 3
  rollbook search --name ali`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchRoll, "roll", "r", 0, "Roll number to look up")
	searchCmd.Flags().StringVarP(&searchName, "name", "n", "", "Name substring to match")
	searchCmd.MarkFlagsOneRequired("roll", "name")
	searchCmd.MarkFlagsMutuallyExclusive("roll", "name")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, _, err := openRoster()
	if err != nil {
		return err
	}

	if searchRoll > 0 {
		rec, err := s.FindByRoll(searchRoll)
		if err != nil {
			return fmt.Errorf("roll %d: %w", searchRoll, err)
		}

		exporter := export.New(os.Stdout, export.FormatText)
		exporter.Start()
		exporter.Export(rec)

		// Detail view: the full marks list.
		marks := make([]string, len(rec.Marks))
		for i, m := range rec.Marks {
			marks[i] = fmt.Sprint(m)
		}
		fmt.Printf("Marks: %s\n", strings.Join(marks, ", "))
		return nil
	}

	hits := s.SearchName(searchName)
	if len(hits) == 0 {
		fmt.Printf("No matches for %q.\n", searchName)
		return nil
	}

	exporter := export.New(os.Stdout, export.FormatText)
	exporter.Start()
	for _, rec := range hits {
		exporter.Export(rec)
	}
	return nil
}
