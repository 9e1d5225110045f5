package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingField is returned when a salary range lacks a bound.
	ErrMissingField = errors.New("missing values")
	// ErrNotANumber is returned when a salary field is not a base-10 integer.
	ErrNotANumber = errors.New("values are not numbers")
	// ErrInvalidRange is returned when min_salary is greater than max_salary.
	ErrInvalidRange = errors.New("min_salary cannot be greater than max_salary")
	// ErrEmptyDataset is returned by aggregations when no row has a usable value.
	ErrEmptyDataset = errors.New("no valid values in dataset")
)

// FieldError ties a validation failure to the field that caused it so callers
// can inspect the kind with errors.Is.
type FieldError struct {
	Field string
	Value string // raw text, empty if absent
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// HTTPError wraps an HTTP status code so retry logic can inspect it.
type HTTPError struct {
	StatusCode int
	RetryAfter time.Duration // from Retry-After header, zero if absent
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
