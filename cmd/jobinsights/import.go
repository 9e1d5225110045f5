package main

import (
	"fmt"

	"github.com/amishk599/jobinsights/internal/jobs"
	"github.com/amishk599/jobinsights/internal/model"
	"github.com/amishk599/jobinsights/internal/store"
	"github.com/spf13/cobra"
)

var (
	importOut    string
	importDryRun bool
)

var importCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Load a CSV dataset into SQLite",
	Long:  "Parses the CSV file and replaces the contents of the SQLite store with its rows. The store can then be queried with --dataset.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importOut, "out", "o", "", "sqlite file to write (default: store_path from config)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "parse and count rows without writing the store")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := commandSetup()
	if err != nil {
		return err
	}

	out := cfg.StorePath
	if importOut != "" {
		out = importOut
	}

	rows, err := jobs.NewCSVReader().Read(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var s model.JobStore
	if importDryRun {
		logger.Info("dry-run mode enabled, store will not be written")
		s = store.NewNopStore()
	} else {
		sqlStore, err := store.NewSQLiteStore(out)
		if err != nil {
			return err
		}
		s = sqlStore
	}
	defer s.Close()

	if err := s.Replace(cmd.Context(), rows); err != nil {
		return err
	}

	stored, err := s.Count(cmd.Context())
	if err != nil {
		return err
	}
	logger.Info("dataset imported", "source", args[0], "store", out, "rows", len(rows), "stored", stored)

	if importDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Dry run: parsed %d jobs, nothing written\n", len(rows))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d jobs into %s\n", stored, out)
	}
	return nil
}
