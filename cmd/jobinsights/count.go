package main

import (
	"fmt"

	"github.com/amishk599/jobinsights/internal/counter"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count <term>",
	Short: "Count occurrences of a term in the dataset file",
	Long:  "Counts case-insensitive occurrences of term anywhere in the dataset file, headers included.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, _, err := commandSetup()
	if err != nil {
		return err
	}
	n, err := counter.CountOccurrences(resolveDataset(cfg), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
