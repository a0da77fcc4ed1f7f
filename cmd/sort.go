package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rollbook/rollbook/pkg/model"
)

var sortDesc bool

var sortCmd = &cobra.Command{
	Use:     "sort KEY",
	Short:   "Sort the roster",
	Long:    `Reorder the roster by roll, name, or average. The new order becomes the stored order.`,
	GroupID: "records",
	Example: `  rollbook sort roll
  rollbook sort name
  rollbook sort average --desc`,
	Args: cobra.ExactArgs(1),
	RunE: runSort,
}

func init() {
	sortCmd.Flags().BoolVar(&sortDesc, "desc", false, "Sort in descending order")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	key, err := model.ParseSortKey(args[0])
	if err != nil {
		return err
	}
	order := model.Ascending
	if sortDesc {
		order = model.Descending
	}

	s, logger, err := openRoster()
	if err != nil {
		return err
	}
	if s.Count() == 0 {
		fmt.Println("No records.")
		return nil
	}

	if err := s.Sort(key, order); err != nil {
		warnSaveFailed(logger, err)
	}

	dir := "ascending"
	if sortDesc {
		dir = "descending"
	}
	fmt.Printf("Sorted %d records by %s (%s).\n", s.Count(), key, dir)
	return nil
}
