package main

import (
	"fmt"

	"github.com/amishk599/jobinsights/internal/insights"
	"github.com/spf13/cobra"
)

var jobTypesCmd = &cobra.Command{
	Use:   "job-types",
	Short: "List distinct job types",
	Long:  "Prints every distinct job type of the dataset, in order of first occurrence.",
	Args:  cobra.NoArgs,
	RunE:  runJobTypes,
}

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List distinct industries",
	Long:  "Prints every distinct non-empty industry of the dataset, in order of first occurrence.",
	Args:  cobra.NoArgs,
	RunE:  runIndustries,
}

func init() {
	rootCmd.AddCommand(jobTypesCmd)
	rootCmd.AddCommand(industriesCmd)
}

func runJobTypes(cmd *cobra.Command, args []string) error {
	cfg, _, err := commandSetup()
	if err != nil {
		return err
	}
	types, err := insights.UniqueJobTypes(cmd.Context(), setupReader(), resolveDataset(cfg))
	if err != nil {
		return err
	}
	for _, t := range types {
		fmt.Fprintln(cmd.OutOrStdout(), t)
	}
	return nil
}

func runIndustries(cmd *cobra.Command, args []string) error {
	cfg, _, err := commandSetup()
	if err != nil {
		return err
	}
	industries, err := insights.UniqueIndustries(cmd.Context(), setupReader(), resolveDataset(cfg))
	if err != nil {
		return err
	}
	for _, i := range industries {
		fmt.Fprintln(cmd.OutOrStdout(), i)
	}
	return nil
}
