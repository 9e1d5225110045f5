package main

import (
	"fmt"

	"github.com/amishk599/jobinsights/internal/insights"
	"github.com/amishk599/jobinsights/internal/model"
	"github.com/spf13/cobra"
)

var (
	matchMin    int
	matchMax    int
	matchSalary int
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Check whether a salary fits a range",
	Long:  "Prints true if --salary lies within [--min, --max], both ends inclusive. Fails if a bound is missing or --min exceeds --max.",
	Args:  cobra.NoArgs,
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().IntVar(&matchMin, "min", 0, "range lower bound (min_salary)")
	matchCmd.Flags().IntVar(&matchMax, "max", 0, "range upper bound (max_salary)")
	matchCmd.Flags().IntVar(&matchSalary, "salary", 0, "salary to test")
	_ = matchCmd.MarkFlagRequired("salary")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	var r model.SalaryRange
	if cmd.Flags().Changed("min") {
		r.Min = &matchMin
	}
	if cmd.Flags().Changed("max") {
		r.Max = &matchMax
	}

	ok, err := insights.MatchesSalaryRange(r, matchSalary)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	return nil
}
