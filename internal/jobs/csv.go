package jobs

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amishk599/jobinsights/internal/model"
)

// Ensure CSVReader implements model.JobReader.
var _ model.JobReader = (*CSVReader)(nil)

// CSVReader reads a dataset from a CSV file whose first line is the header.
type CSVReader struct{}

func NewCSVReader() *CSVReader { return &CSVReader{} }

// Read opens path and parses every row.
func (r *CSVReader) Read(ctx context.Context, path string) ([]model.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return ParseCSV(ctx, f)
}

// ParseCSV decodes CSV rows into jobs in file order. The header must contain
// every column in model.RequiredColumns; other columns land in Job.Fields.
func ParseCSV(ctx context.Context, src io.Reader) ([]model.Job, error) {
	cr := csv.NewReader(src)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []model.Job{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range model.RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &model.FieldError{Field: col, Err: model.ErrMissingField}
		}
	}

	jobs := make([]model.Job, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ParseError already carries the line number.
			return nil, fmt.Errorf("reading row: %w", err)
		}
		jobs = append(jobs, toJob(header, index, record))
	}
	return jobs, nil
}

func toJob(header []string, index map[string]int, record []string) model.Job {
	j := model.Job{
		JobType:   record[index[model.ColJobType]],
		Industry:  record[index[model.ColIndustry]],
		MinSalary: record[index[model.ColMinSalary]],
		MaxSalary: record[index[model.ColMaxSalary]],
	}
	for i, name := range header {
		switch name {
		case model.ColJobType, model.ColIndustry, model.ColMinSalary, model.ColMaxSalary:
			continue
		}
		if j.Fields == nil {
			j.Fields = make(map[string]string, len(header)-len(model.RequiredColumns))
		}
		j.Fields[name] = record[i]
	}
	return j
}
