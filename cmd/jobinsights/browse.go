package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/amishk599/jobinsights/internal/browse"
	"github.com/amishk599/jobinsights/internal/insights"
	"github.com/amishk599/jobinsights/internal/model"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse jobs interactively (TUI)",
	Long:  "Reads the dataset once, shows a job type picker, then a list of that type's jobs with an optional salary filter.",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, _, err := commandSetup()
	if err != nil {
		return err
	}

	source := resolveDataset(cfg)
	reader := setupReader()
	all, err := browse.RunLoader(cmd.Context(), source, func(ctx context.Context) ([]model.Job, error) {
		return reader.Read(ctx, source)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}

	types := insights.JobTypes(all)
	options := browse.JobTypeOptions(all)
	if len(options) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Dataset is empty.")
		return nil
	}

	for {
		choice, err := browse.RunPicker("Select a job type", options)
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}
		if choice < 0 {
			return nil
		}

		jobType := types[choice]
		wantQuit, err := browse.RunBrowser(options[choice].Label, insights.FilterByJobType(all, jobType))
		if err != nil {
			return fmt.Errorf("browser: %w", err)
		}
		if wantQuit {
			return nil
		}
		// else: loop → back to picker
	}
}
