package main

import (
	"github.com/amishk599/jobinsights/internal/insights"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarise the dataset and deliver it",
	Long:  "Builds a summary (row count, job types, industries, salary extremes) and sends it through the configured notifier (log or slack).",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := commandSetup()
	if err != nil {
		return err
	}

	source := resolveDataset(cfg)
	report, err := insights.BuildReport(cmd.Context(), setupReader(), source)
	if err != nil {
		return err
	}
	if report.MinSalary == nil || report.MaxSalary == nil {
		logger.Warn("dataset has no usable salaries", "dataset", source)
	}

	n := setupNotifier(cfg, logger)
	if err := n.Notify(cmd.Context(), report); err != nil {
		logger.Error("report delivery failed", "error", err)
		return err
	}
	return nil
}
