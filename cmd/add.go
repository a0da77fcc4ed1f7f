package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	addName  string
	addMarks string
)

var addCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a student record",
	Long:    `Add a student to the roster. The roll number is assigned automatically.`,
	GroupID: "records",
	Example: `  rollbook add --name "Alice Johnson" --marks 85,90,78
  rollbook add -n Bob -m 40,45,50`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Student name (required)")
	addCmd.Flags().StringVarP(&addMarks, "marks", "m", "", "Comma-separated marks, 0-100 each (required)")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("marks")
	rootCmd.AddCommand(addCmd)
}

// parseMarks parses a comma-separated marks list. Range checks happen in
// the store; this only rejects non-numeric input.
func parseMarks(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	marks := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		m, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid mark %q", p)
		}
		marks = append(marks, m)
	}
	return marks, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	marks, err := parseMarks(addMarks)
	if err != nil {
		return err
	}

	s, logger, err := openRoster()
	if err != nil {
		return err
	}

	rec, err := s.Add(addName, marks)
	if rec == nil {
		return err
	}
	if err != nil {
		warnSaveFailed(logger, err)
	}

	fmt.Printf("Added: Roll %d | %s | Avg: %.2f | Grade: %s\n",
		rec.Roll, rec.Name, rec.Average, rec.Grade)
	return nil
}
