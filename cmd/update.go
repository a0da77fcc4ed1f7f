package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	updateName  string
	updateMarks string
)

var updateCmd = &cobra.Command{
	Use:     "update ROLL",
	Short:   "Update a student record",
	Long:    `Replace the name and/or marks of the record with the given roll number. Average and grade are recomputed.`,
	GroupID: "records",
	Example: `  rollbook update 3 --name "Alicia Johnson"
  rollbook update 3 --marks 70,80,90
  rollbook update 3 -n Bob -m 55,65`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "New name")
	updateCmd.Flags().StringVarP(&updateMarks, "marks", "m", "", "New comma-separated marks")
	updateCmd.MarkFlagsOneRequired("name", "marks")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	roll, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid roll number %q", args[0])
	}

	var newName *string
	if cmd.Flags().Changed("name") {
		newName = &updateName
	}
	var newMarks []int
	if cmd.Flags().Changed("marks") {
		newMarks, err = parseMarks(updateMarks)
		if err != nil {
			return err
		}
	}

	s, logger, err := openRoster()
	if err != nil {
		return err
	}

	rec, err := s.Update(roll, newName, newMarks)
	if rec == nil {
		return err
	}
	if err != nil {
		warnSaveFailed(logger, err)
	}

	fmt.Printf("Updated: Roll %d | %s | Avg: %.2f | Grade: %s\n",
		rec.Roll, rec.Name, rec.Average, rec.Grade)
	return nil
}
