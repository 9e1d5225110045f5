package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/amishk599/jobinsights/internal/filter"
	"github.com/amishk599/jobinsights/internal/insights"
	"github.com/amishk599/jobinsights/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	filterJobType  string
	filterIndustry string
	filterSalary   int
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List jobs matching a job type, industry and/or salary",
	Long: "Reads the dataset once and keeps the rows passing every given filter (job type, industry, salary). " +
		"Rows whose salary range is missing, non-numeric or inverted never match a salary.",
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVar(&filterJobType, "job-type", "", "exact job_type to keep")
	filterCmd.Flags().StringVar(&filterIndustry, "industry", "", "exact industry to keep")
	filterCmd.Flags().IntVar(&filterSalary, "salary", 0, "keep jobs whose [min_salary, max_salary] contains this salary")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg, logger, err := commandSetup()
	if err != nil {
		return err
	}

	source := resolveDataset(cfg)
	jobs, err := setupReader().Read(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}
	total := len(jobs)

	var active filter.All
	flags := cmd.Flags()
	if flags.Changed("job-type") {
		active = append(active, filter.NewJobTypeFilter(filterJobType))
	}
	if flags.Changed("industry") {
		active = append(active, filter.NewIndustryFilter(filterIndustry))
	}
	if flags.Changed("salary") {
		active = append(active, filter.NewSalaryRangeFilter(filterSalary, insights.MatchesSalaryRange))
	}
	jobs = filter.Apply(jobs, active)

	logger.Debug("filtered dataset", "dataset", source, "rows", total, "matched", len(jobs))
	printJobs(cmd.OutOrStdout(), jobs)
	return nil
}

func printJobs(w io.Writer, jobs []model.Job) {
	fmt.Fprintf(w, "%s %s %s %10s %10s\n", fitWidth("Title", 35), fitWidth("Type", 12), fitWidth("Industry", 25), "Min", "Max")
	fmt.Fprintln(w, strings.Repeat("─", 96))
	for _, j := range jobs {
		title, _ := j.Get("job_title")
		fmt.Fprintf(w, "%s %s %s %10s %10s\n",
			fitWidth(title, 35), fitWidth(j.JobType, 12), fitWidth(j.Industry, 25), j.MinSalary, j.MaxSalary)
	}
	fmt.Fprintf(w, "\nTotal: %d jobs\n", len(jobs))
}

// fitWidth truncates s on rune boundaries and pads it to exactly width
// terminal cells.
func fitWidth(s string, width int) string {
	if lipgloss.Width(s) > width {
		r := []rune(s)
		for len(r) > 0 && lipgloss.Width(string(r))+3 > width {
			r = r[:len(r)-1]
		}
		s = string(r) + "..."
	}
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}
