package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/amishk599/jobinsights/internal/config"
	"github.com/amishk599/jobinsights/internal/jobs"
	"github.com/amishk599/jobinsights/internal/model"
	"github.com/amishk599/jobinsights/internal/notifier"
	"github.com/amishk599/jobinsights/internal/retry"
	"github.com/spf13/cobra"
)

const (
	defaultConfigPath = "config.yaml"
	retryBaseDelay    = 5 * time.Second
)

var (
	cfgPath     string
	debug       bool
	datasetPath string
)

var rootCmd = &cobra.Command{
	Use:           "jobinsights",
	Short:         "Query a job listings dataset",
	Long:          "jobinsights lists job types and industries, filters listings by type, industry or salary, and reports salary extremes.",
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBINSIGHTS_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&datasetPath, "dataset", "d", "", "dataset to query, .csv or sqlite (default: dataset from config)")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBINSIGHTS_CONFIG env var > "./config.yaml".
// A missing ./config.yaml falls back to defaults; a missing explicit path is an error.
func loadConfig(path string) (*config.Config, error) {
	explicit := true
	if path == "" {
		if env := os.Getenv("JOBINSIGHTS_CONFIG"); env != "" {
			path = env
		} else {
			path = defaultConfigPath
			explicit = false
		}
	}
	cfg, err := config.Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// resolveDataset returns the --dataset flag if set, else the configured dataset.
func resolveDataset(cfg *config.Config) string {
	if datasetPath != "" {
		return datasetPath
	}
	return cfg.Dataset
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func setupReader() model.JobReader {
	return jobs.NewReader()
}

func setupNotifier(cfg *config.Config, logger *slog.Logger) model.Notifier {
	switch cfg.Report.Type {
	case "slack":
		logger.Info("using slack notifier")
		httpClient := &http.Client{Timeout: cfg.Report.Timeout}
		slack := notifier.NewSlackNotifier(cfg.Report.WebhookURL, httpClient, logger)
		return retry.NewRetryNotifier(slack, cfg.Report.MaxRetries, retryBaseDelay, logger)
	default:
		return notifier.NewLogNotifier(logger)
	}
}

// commandSetup is the per-command bootstrap shared by every query command.
func commandSetup() (*config.Config, *slog.Logger, error) {
	logger := setupLogger(debug)
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("config loaded", "dataset", resolveDataset(cfg), "store_path", cfg.StorePath, "report", cfg.Report.Type)
	return cfg, logger, nil
}
