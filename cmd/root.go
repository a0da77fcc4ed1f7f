// Package cmd provides the CLI commands for rollbook using Cobra.
package cmd

import (
	"os"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"

	"github.com/rollbook/rollbook/internal/app"
	"github.com/rollbook/rollbook/pkg/store"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "rollbook",
	Short: "Student roster manager with CSV persistence",
	Long: `Rollbook keeps a class roster in a plain CSV file and supports:

  - Add / list / update / delete student records
  - Search by roll number or name
  - Sorting by roll, name, or average
  - Class statistics and a printable report
  - SQL queries over the roster

Examples:
  rollbook add --name "Alice Johnson" --marks 85,90,78
  rollbook list --filter 'average >= 75'
  rollbook search --name ali
  rollbook sort name --desc
  rollbook stats
  rollbook report -o report.txt`,
	Version: Version,
}

// dataFile is the persistent roster path, shared by all subcommands.
var dataFile string

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "data", "f", app.DefaultDataFile,
		"Roster CSV file")

	// Define command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: "records", Title: "Record Commands:"},
		&cobra.Group{ID: "analysis", Title: "Analysis Commands:"},
	)
}

// openRoster loads the data file and returns the store plus the shared
// diagnostic logger.
func openRoster() (*store.Store, log.Logger, error) {
	logger := app.NewLogger()
	s, err := app.OpenRoster(dataFile, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, logger, nil
}

// warnSaveFailed reports a persistence failure that did not roll back
// the in-memory change.
func warnSaveFailed(logger log.Logger, err error) {
	logger.Log("msg", "change applied but not persisted", "err", err)
}
