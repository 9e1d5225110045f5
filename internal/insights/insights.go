// Package insights answers questions about a job listings dataset: which job
// types and industries it contains, which listings fit a salary, and the
// salary extremes on offer.
//
// Functions taking a model.JobReader load the dataset on every call. Callers
// needing several views of one dataset should read it once and use the
// filtering functions, which work on an already loaded slice.
package insights

import (
	"context"
	"fmt"

	"github.com/amishk599/jobinsights/internal/filter"
	"github.com/amishk599/jobinsights/internal/model"
)

// UniqueJobTypes returns the distinct job types of the dataset at source, in
// order of first occurrence.
func UniqueJobTypes(ctx context.Context, r model.JobReader, source string) ([]string, error) {
	jobs, err := r.Read(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return JobTypes(jobs), nil
}

// UniqueIndustries returns the distinct industries of the dataset at source,
// in order of first occurrence. Empty industries are skipped.
func UniqueIndustries(ctx context.Context, r model.JobReader, source string) ([]string, error) {
	jobs, err := r.Read(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return Industries(jobs), nil
}

// JobTypes is UniqueJobTypes over an already loaded dataset.
func JobTypes(jobs []model.Job) []string {
	return distinct(jobs, func(j model.Job) string { return j.JobType }, false)
}

// Industries is UniqueIndustries over an already loaded dataset.
func Industries(jobs []model.Job) []string {
	return distinct(jobs, func(j model.Job) string { return j.Industry }, true)
}

func distinct(jobs []model.Job, field func(model.Job) string, skipEmpty bool) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, j := range jobs {
		v := field(j)
		if skipEmpty && v == "" {
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// FilterByJobType returns the jobs whose job type equals jobType, in order.
func FilterByJobType(jobs []model.Job, jobType string) []model.Job {
	return filter.Apply(jobs, filter.NewJobTypeFilter(jobType))
}

// FilterByIndustry returns the jobs whose industry equals industry, in order.
func FilterByIndustry(jobs []model.Job, industry string) []model.Job {
	return filter.Apply(jobs, filter.NewIndustryFilter(industry))
}

// MaxSalary returns the highest max_salary in the dataset at source. Only
// all-digit values count; if none does, the error is model.ErrEmptyDataset.
func MaxSalary(ctx context.Context, r model.JobReader, source string) (int, error) {
	jobs, err := r.Read(ctx, source)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", source, err)
	}
	return reduce(jobs, func(j model.Job) string { return j.MaxSalary }, func(a, b int) bool { return a > b })
}

// MinSalary returns the lowest min_salary in the dataset at source. Only
// all-digit values count; if none does, the error is model.ErrEmptyDataset.
func MinSalary(ctx context.Context, r model.JobReader, source string) (int, error) {
	jobs, err := r.Read(ctx, source)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", source, err)
	}
	return reduce(jobs, func(j model.Job) string { return j.MinSalary }, func(a, b int) bool { return a < b })
}

// reduce keeps the value for which better(candidate, current) holds.
func reduce(jobs []model.Job, field func(model.Job) string, better func(a, b int) bool) (int, error) {
	var (
		best  int
		found bool
	)
	for _, j := range jobs {
		n, ok := model.ParseSalary(field(j))
		if !ok {
			continue
		}
		if !found || better(n, best) {
			best = n
			found = true
		}
	}
	if !found {
		return 0, model.ErrEmptyDataset
	}
	return best, nil
}

// MatchesSalaryRange reports whether salary lies in [r.Min, r.Max], both ends
// inclusive. It fails with model.ErrMissingField when either bound is absent
// and with model.ErrInvalidRange when Min is greater than Max.
func MatchesSalaryRange(r model.SalaryRange, salary int) (bool, error) {
	if r.Min == nil {
		return false, &model.FieldError{Field: model.ColMinSalary, Err: model.ErrMissingField}
	}
	if r.Max == nil {
		return false, &model.FieldError{Field: model.ColMaxSalary, Err: model.ErrMissingField}
	}
	if *r.Min > *r.Max {
		return false, fmt.Errorf("range [%d, %d]: %w", *r.Min, *r.Max, model.ErrInvalidRange)
	}
	return *r.Min <= salary && salary <= *r.Max, nil
}

// FilterBySalaryRange returns the jobs whose salary range contains salary, in
// order. Jobs with a missing, non-numeric or inverted range are left out.
func FilterBySalaryRange(jobs []model.Job, salary int) []model.Job {
	return filter.Apply(jobs, filter.NewSalaryRangeFilter(salary, MatchesSalaryRange))
}

// BuildReport reads the dataset once and summarises it. Salary bounds are
// left nil when no row has a usable value.
func BuildReport(ctx context.Context, r model.JobReader, source string) (model.Report, error) {
	jobs, err := r.Read(ctx, source)
	if err != nil {
		return model.Report{}, fmt.Errorf("reading %s: %w", source, err)
	}

	report := model.Report{
		Source:     source,
		Rows:       len(jobs),
		JobTypes:   JobTypes(jobs),
		Industries: Industries(jobs),
	}
	if lo, err := reduce(jobs, func(j model.Job) string { return j.MinSalary }, func(a, b int) bool { return a < b }); err == nil {
		report.MinSalary = &lo
	}
	if hi, err := reduce(jobs, func(j model.Job) string { return j.MaxSalary }, func(a, b int) bool { return a > b }); err == nil {
		report.MaxSalary = &hi
	}
	return report, nil
}
