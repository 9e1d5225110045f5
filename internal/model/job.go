package model

import (
	"context"
	"strconv"
)

// Column names every dataset must carry.
const (
	ColJobType   = "job_type"
	ColIndustry  = "industry"
	ColMinSalary = "min_salary"
	ColMaxSalary = "max_salary"
)

// RequiredColumns lists the columns a reader must find in the source header.
var RequiredColumns = []string{ColJobType, ColIndustry, ColMinSalary, ColMaxSalary}

// Job is one row of a job listings dataset. Values are kept as sourced; numeric
// columns are digit strings or empty when the listing has no salary.
type Job struct {
	JobType   string
	Industry  string
	MinSalary string
	MaxSalary string
	Fields    map[string]string // every other column, keyed by header name
}

// Get returns the value of any column, required or not.
func (j Job) Get(column string) (string, bool) {
	switch column {
	case ColJobType:
		return j.JobType, true
	case ColIndustry:
		return j.Industry, true
	case ColMinSalary:
		return j.MinSalary, true
	case ColMaxSalary:
		return j.MaxSalary, true
	}
	v, ok := j.Fields[column]
	return v, ok
}

// SalaryRange returns the integer view of the job's salary columns. A column
// that ParseSalary rejects (empty, signed, spaced, decimal) yields a
// *FieldError wrapping ErrNotANumber.
func (j Job) SalaryRange() (SalaryRange, error) {
	lo, ok := ParseSalary(j.MinSalary)
	if !ok {
		return SalaryRange{}, &FieldError{Field: ColMinSalary, Value: j.MinSalary, Err: ErrNotANumber}
	}
	hi, ok := ParseSalary(j.MaxSalary)
	if !ok {
		return SalaryRange{}, &FieldError{Field: ColMaxSalary, Value: j.MaxSalary, Err: ErrNotANumber}
	}
	return NewSalaryRange(lo, hi), nil
}

// ParseSalary accepts non-empty strings of ASCII digits only; signs, spaces
// and decimals are rejected. Values overflowing int are rejected too. Range
// matching and salary aggregation share this rule.
func ParseSalary(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SalaryRange is the inclusive [Min, Max] salary interval of a listing.
// A nil bound means the field is absent.
type SalaryRange struct {
	Min *int
	Max *int
}

// NewSalaryRange returns a range with both bounds set.
func NewSalaryRange(lo, hi int) SalaryRange {
	return SalaryRange{Min: &lo, Max: &hi}
}

// Report summarises a dataset. Salary bounds are nil when no row carries a
// usable value.
type Report struct {
	Source     string
	Rows       int
	JobTypes   []string
	Industries []string
	MinSalary  *int
	MaxSalary  *int
}

// JobReader loads a dataset from a source location, preserving row order.
type JobReader interface {
	Read(ctx context.Context, source string) ([]Job, error)
}

// JobFilter decides whether a job belongs in a filtered view.
type JobFilter interface {
	Match(job Job) bool
}

// JobStore persists an imported dataset.
type JobStore interface {
	Replace(ctx context.Context, jobs []Job) error
	Count(ctx context.Context) (int, error)
	Close() error
}

// Notifier delivers a dataset report.
type Notifier interface {
	Notify(ctx context.Context, report Report) error
}
