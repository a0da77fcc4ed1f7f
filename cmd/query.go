package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rollbook/rollbook/pkg/query"
)

var queryCmd = &cobra.Command{
	Use:   "query SQL",
	Short: "Run SQL over the roster",
	Long: `Load the roster into an in-memory SQLite database and run a read-only
SELECT against the students table (roll, name, subject_count, marks,
average, grade).`,
	GroupID: "analysis",
	Example: `  rollbook query "SELECT name, average FROM students WHERE grade = 'A'"
  rollbook query "SELECT grade, COUNT(*) FROM students GROUP BY grade"`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	s, _, err := openRoster()
	if err != nil {
		return err
	}

	engine, err := query.NewEngine(s.All())
	if err != nil {
		return fmt.Errorf("load query engine: %w", err)
	}
	defer engine.Close()

	res, err := engine.Query(context.Background(), args[0])
	if err != nil {
		return err
	}

	res.WriteTable(os.Stdout)
	fmt.Printf("(%d rows)\n", len(res.Rows))
	return nil
}
