package filter

import (
	"github.com/amishk599/jobinsights/internal/model"
)

// Ensure the filters implement model.JobFilter.
var (
	_ model.JobFilter = (*JobTypeFilter)(nil)
	_ model.JobFilter = (*IndustryFilter)(nil)
	_ model.JobFilter = (*SalaryRangeFilter)(nil)
	_ model.JobFilter = All(nil)
)

// JobTypeFilter matches jobs whose job_type equals the given value exactly.
// Matching is case-sensitive with no normalization.
type JobTypeFilter struct {
	jobType string
}

func NewJobTypeFilter(jobType string) *JobTypeFilter {
	return &JobTypeFilter{jobType: jobType}
}

func (f *JobTypeFilter) Match(job model.Job) bool {
	return job.JobType == f.jobType
}

// IndustryFilter matches jobs whose industry equals the given value exactly.
type IndustryFilter struct {
	industry string
}

func NewIndustryFilter(industry string) *IndustryFilter {
	return &IndustryFilter{industry: industry}
}

func (f *IndustryFilter) Match(job model.Job) bool {
	return job.Industry == f.industry
}

// SalaryRangeFilter matches jobs whose salary range contains salary. Jobs
// whose range fails validation never match.
type SalaryRangeFilter struct {
	salary int
	match  func(model.SalaryRange, int) (bool, error)
}

// NewSalaryRangeFilter returns a filter that uses match to validate and test
// each job's range.
func NewSalaryRangeFilter(salary int, match func(model.SalaryRange, int) (bool, error)) *SalaryRangeFilter {
	return &SalaryRangeFilter{salary: salary, match: match}
}

// Match builds the job's range view and reports whether it contains the
// salary. Any validation error is treated as a non-match.
func (f *SalaryRangeFilter) Match(job model.Job) bool {
	r, err := job.SalaryRange()
	if err != nil {
		return false
	}
	ok, err := f.match(r, f.salary)
	if err != nil {
		return false
	}
	return ok
}

// All matches jobs accepted by every filter in the list. An empty list passes all.
type All []model.JobFilter

func (a All) Match(job model.Job) bool {
	for _, f := range a {
		if !f.Match(job) {
			return false
		}
	}
	return true
}

// Apply returns the jobs accepted by f, in input order. The result is never
// nil and never aliases jobs.
func Apply(jobs []model.Job, f model.JobFilter) []model.Job {
	matched := make([]model.Job, 0)
	for _, job := range jobs {
		if f.Match(job) {
			matched = append(matched, job)
		}
	}
	return matched
}
