package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varkel/sudoku/internal/rule"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available variant rules",
		RunE:  runList,
	}
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	for _, id := range rule.Variants() {
		r, err := rule.New(id, rule.Options{})
		if err != nil {
			return err
		}
		fmt.Printf("%-16s %s\n", id, r.Description())
	}
	return nil
}
