package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the jobinsights CLI.
type Config struct {
	Dataset   string       `validate:"required"` // default source for queries
	StorePath string       `validate:"required"` // sqlite file written by `import`
	Report    ReportConfig
}

// ReportConfig controls where `report` delivers its summary.
type ReportConfig struct {
	Type       string        `yaml:"type" validate:"oneof=log slack"`
	WebhookURL string        `yaml:"webhook_url" validate:"required_if=Type slack,omitempty,url"`
	Timeout    time.Duration // HTTP timeout for webhook delivery
	MaxRetries int           `validate:"min=0,max=10"` // extra attempts after a transient failure
}

const (
	defaultDataset   = "data/jobs.csv"
	defaultStorePath = "jobs.db"
	defaultTimeout   = 30 * time.Second
	defaultRetries   = 2
	slackHookPrefix  = "https://hooks.slack.com/"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Dataset   string          `yaml:"dataset"`
	StorePath string          `yaml:"store_path"`
	Report    rawReportConfig `yaml:"report"`
}

type rawReportConfig struct {
	Type       string `yaml:"type"`
	WebhookURL string `yaml:"webhook_url"`
	Timeout    string `yaml:"timeout"`
	MaxRetries *int   `yaml:"max_retries"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Dataset:   defaultDataset,
		StorePath: defaultStorePath,
		Report: ReportConfig{
			Type:       "log",
			Timeout:    defaultTimeout,
			MaxRetries: defaultRetries,
		},
	}
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.Dataset != "" {
		cfg.Dataset = raw.Dataset
	}
	if raw.StorePath != "" {
		cfg.StorePath = raw.StorePath
	}
	if raw.Report.Type != "" {
		cfg.Report.Type = raw.Report.Type
	}
	cfg.Report.WebhookURL = raw.Report.WebhookURL
	if raw.Report.Timeout != "" {
		cfg.Report.Timeout, err = time.ParseDuration(raw.Report.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse report.timeout %q: %w", raw.Report.Timeout, err)
		}
	}

	if raw.Report.MaxRetries != nil {
		cfg.Report.MaxRetries = *raw.Report.MaxRetries
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Report.Timeout <= 0 {
		return fmt.Errorf("report.timeout must be positive, got %v", cfg.Report.Timeout)
	}

	if cfg.Report.Type == "slack" && !strings.HasPrefix(cfg.Report.WebhookURL, slackHookPrefix) {
		return fmt.Errorf("report.webhook_url must start with %s", slackHookPrefix)
	}

	return nil
}
