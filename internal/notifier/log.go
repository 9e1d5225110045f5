package notifier

import (
	"context"
	"log/slog"

	"github.com/amishk599/jobinsights/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes a dataset report to the given logger as a structured message.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs each report via slog.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the report. Salary bounds are omitted when unknown.
// Returns nil (stdout logging does not fail).
func (n *LogNotifier) Notify(_ context.Context, r model.Report) error {
	args := []any{
		"source", r.Source,
		"rows", r.Rows,
		"job_types", r.JobTypes,
		"industries", len(r.Industries),
	}
	if r.MinSalary != nil {
		args = append(args, "min_salary", *r.MinSalary)
	}
	if r.MaxSalary != nil {
		args = append(args, "max_salary", *r.MaxSalary)
	}
	n.logger.Info("dataset report", args...)
	return nil
}
