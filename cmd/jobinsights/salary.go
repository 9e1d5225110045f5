package main

import (
	"errors"
	"fmt"

	"github.com/amishk599/jobinsights/internal/insights"
	"github.com/amishk599/jobinsights/internal/model"
	"github.com/spf13/cobra"
)

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Salary aggregation subcommands",
}

var salaryMaxCmd = &cobra.Command{
	Use:   "max",
	Short: "Print the highest max_salary",
	Args:  cobra.NoArgs,
	RunE:  runSalaryMax,
}

var salaryMinCmd = &cobra.Command{
	Use:   "min",
	Short: "Print the lowest min_salary",
	Args:  cobra.NoArgs,
	RunE:  runSalaryMin,
}

func init() {
	rootCmd.AddCommand(salaryCmd)
	salaryCmd.AddCommand(salaryMaxCmd)
	salaryCmd.AddCommand(salaryMinCmd)
}

func runSalaryMax(cmd *cobra.Command, args []string) error {
	cfg, logger, err := commandSetup()
	if err != nil {
		return err
	}
	source := resolveDataset(cfg)
	n, err := insights.MaxSalary(cmd.Context(), setupReader(), source)
	if errors.Is(err, model.ErrEmptyDataset) {
		logger.Error("no numeric max_salary in dataset", "dataset", source)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

func runSalaryMin(cmd *cobra.Command, args []string) error {
	cfg, logger, err := commandSetup()
	if err != nil {
		return err
	}
	source := resolveDataset(cfg)
	n, err := insights.MinSalary(cmd.Context(), setupReader(), source)
	if errors.Is(err, model.ErrEmptyDataset) {
		logger.Error("no numeric min_salary in dataset", "dataset", source)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
