package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete ROLL",
	Short:   "Delete a student record",
	Long:    `Remove the record with the given roll number. The roll is never reassigned to a later record.`,
	GroupID: "records",
	Aliases: []string{"rm"},
	Example: `  rollbook delete 3
  rollbook delete 3 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	roll, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid roll number %q", args[0])
	}

	s, logger, err := openRoster()
	if err != nil {
		return err
	}

	rec, err := s.FindByRoll(roll)
	if err != nil {
		return fmt.Errorf("roll %d: %w", roll, err)
	}

	if !deleteYes {
		fmt.Printf("Delete Roll %d (%s)? (y/n): ", rec.Roll, rec.Name)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := s.Delete(roll); err != nil {
		warnSaveFailed(logger, err)
	}
	fmt.Printf("Deleted Roll %d.\n", roll)
	return nil
}
