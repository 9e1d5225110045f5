package insights

import (
	"context"
	"errors"
	"testing"

	"github.com/amishk599/jobinsights/internal/model"
)

// --- Fakes ---

// StaticReader returns a canned dataset or error and counts reads.
type StaticReader struct {
	Jobs  []model.Job
	Err   error
	reads int
}

func (r *StaticReader) Read(_ context.Context, _ string) ([]model.Job, error) {
	r.reads++
	return r.Jobs, r.Err
}

// --- Helpers ---

func row(jobType, industry, lo, hi string) model.Job {
	return model.Job{JobType: jobType, Industry: industry, MinSalary: lo, MaxSalary: hi}
}

func intPtr(n int) *int { return &n }

func sampleJobs() []model.Job {
	return []model.Job{
		row("FULL_TIME", "Finance", "2000", "5000"),
		row("PART_TIME", "", "1000", "3000"),
		row("FULL_TIME", "Retail", "", ""),
		row("INTERN", "Finance", "500", "1500"),
		row("CONTRACTOR", "Finance", "invalid", "8000"),
		row("PART_TIME", "Retail", "1500", "1200"),
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Distinct values ---

func TestUniqueJobTypes_FirstOccurrenceOrder(t *testing.T) {
	r := &StaticReader{Jobs: sampleJobs()}

	got, err := UniqueJobTypes(context.Background(), r, "jobs.csv")
	if err != nil {
		t.Fatalf("UniqueJobTypes: %v", err)
	}
	want := []string{"FULL_TIME", "PART_TIME", "INTERN", "CONTRACTOR"}
	if !equalStrings(got, want) {
		t.Errorf("UniqueJobTypes() = %v, want %v", got, want)
	}
	if r.reads != 1 {
		t.Errorf("expected 1 read, got %d", r.reads)
	}
}

func TestUniqueJobTypes_NoDuplicatesAndAllPresent(t *testing.T) {
	jobs := sampleJobs()
	got, err := UniqueJobTypes(context.Background(), &StaticReader{Jobs: jobs}, "x")
	if err != nil {
		t.Fatalf("UniqueJobTypes: %v", err)
	}
	seen := map[string]bool{}
	for _, v := range got {
		if seen[v] {
			t.Errorf("duplicate job type %q", v)
		}
		seen[v] = true
	}
	for _, j := range jobs {
		if !seen[j.JobType] {
			t.Errorf("job type %q missing from result", j.JobType)
		}
	}
}

func TestUniqueIndustries_SkipsEmpty(t *testing.T) {
	got, err := UniqueIndustries(context.Background(), &StaticReader{Jobs: sampleJobs()}, "x")
	if err != nil {
		t.Fatalf("UniqueIndustries: %v", err)
	}
	want := []string{"Finance", "Retail"}
	if !equalStrings(got, want) {
		t.Errorf("UniqueIndustries() = %v, want %v", got, want)
	}
	for _, v := range got {
		if v == "" {
			t.Error("result contains the empty string")
		}
	}
}

func TestUniqueValues_EmptyDataset(t *testing.T) {
	r := &StaticReader{}
	types, err := UniqueJobTypes(context.Background(), r, "x")
	if err != nil || types == nil || len(types) != 0 {
		t.Errorf("UniqueJobTypes(empty) = %#v, %v; want empty slice, nil", types, err)
	}
	industries, err := UniqueIndustries(context.Background(), r, "x")
	if err != nil || industries == nil || len(industries) != 0 {
		t.Errorf("UniqueIndustries(empty) = %#v, %v; want empty slice, nil", industries, err)
	}
}

func TestUniqueValues_ReaderError(t *testing.T) {
	readErr := errors.New("disk on fire")
	r := &StaticReader{Err: readErr}
	if _, err := UniqueJobTypes(context.Background(), r, "x"); !errors.Is(err, readErr) {
		t.Errorf("UniqueJobTypes error = %v, want wrapped reader error", err)
	}
	if _, err := UniqueIndustries(context.Background(), r, "x"); !errors.Is(err, readErr) {
		t.Errorf("UniqueIndustries error = %v, want wrapped reader error", err)
	}
}

// --- Categorical filters ---

func TestFilterByJobType(t *testing.T) {
	jobs := sampleJobs()
	got := FilterByJobType(jobs, "FULL_TIME")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Industry != "Finance" || got[1].Industry != "Retail" {
		t.Errorf("order not preserved: %+v", got)
	}

	var want []model.Job
	for _, j := range jobs {
		if j.JobType == "PART_TIME" {
			want = append(want, j)
		}
	}
	got = FilterByJobType(jobs, "PART_TIME")
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].MinSalary != want[i].MinSalary {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got := FilterByJobType(jobs, "full_time"); len(got) != 0 {
		t.Errorf("expected case-sensitive match, got %d rows", len(got))
	}
}

func TestFilterByIndustry(t *testing.T) {
	got := FilterByIndustry(sampleJobs(), "Finance")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantTypes := []string{"FULL_TIME", "INTERN", "CONTRACTOR"}
	for i, w := range wantTypes {
		if got[i].JobType != w {
			t.Errorf("got[%d].JobType = %q, want %q", i, got[i].JobType, w)
		}
	}
	if got := FilterByIndustry(sampleJobs(), "Mining"); len(got) != 0 {
		t.Errorf("expected no match, got %d", len(got))
	}
}

// --- Aggregation ---

func TestMaxSalary(t *testing.T) {
	got, err := MaxSalary(context.Background(), &StaticReader{Jobs: sampleJobs()}, "x")
	if err != nil {
		t.Fatalf("MaxSalary: %v", err)
	}
	if got != 8000 {
		t.Errorf("MaxSalary() = %d, want 8000", got)
	}
}

func TestMinSalary_SkipsNonDigits(t *testing.T) {
	got, err := MinSalary(context.Background(), &StaticReader{Jobs: sampleJobs()}, "x")
	if err != nil {
		t.Fatalf("MinSalary: %v", err)
	}
	if got != 500 {
		t.Errorf("MinSalary() = %d, want 500", got)
	}
}

func TestSalaryAggregation_RejectsSignsAndSpaces(t *testing.T) {
	jobs := []model.Job{
		row("", "", "-100", "+900"),
		row("", "", " 50", "1e3"),
		row("", "", "300", "400"),
	}
	r := &StaticReader{Jobs: jobs}
	lo, err := MinSalary(context.Background(), r, "x")
	if err != nil || lo != 300 {
		t.Errorf("MinSalary() = %d, %v; want 300, nil", lo, err)
	}
	hi, err := MaxSalary(context.Background(), r, "x")
	if err != nil || hi != 400 {
		t.Errorf("MaxSalary() = %d, %v; want 400, nil", hi, err)
	}
}

func TestSalaryAggregation_NoValidValues(t *testing.T) {
	tests := []struct {
		name string
		jobs []model.Job
	}{
		{"empty dataset", nil},
		{"all salaries empty", []model.Job{row("A", "", "", ""), row("B", "", "", "")}},
		{"all salaries non numeric", []model.Job{row("A", "", "n/a", "tbd")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &StaticReader{Jobs: tt.jobs}
			if _, err := MaxSalary(context.Background(), r, "x"); !errors.Is(err, model.ErrEmptyDataset) {
				t.Errorf("MaxSalary error = %v, want ErrEmptyDataset", err)
			}
			if _, err := MinSalary(context.Background(), r, "x"); !errors.Is(err, model.ErrEmptyDataset) {
				t.Errorf("MinSalary error = %v, want ErrEmptyDataset", err)
			}
		})
	}
}

func TestSalaryAggregation_ReaderError(t *testing.T) {
	readErr := errors.New("gone")
	r := &StaticReader{Err: readErr}
	if _, err := MaxSalary(context.Background(), r, "x"); !errors.Is(err, readErr) {
		t.Errorf("MaxSalary error = %v", err)
	}
	if _, err := MinSalary(context.Background(), r, "x"); !errors.Is(err, readErr) {
		t.Errorf("MinSalary error = %v", err)
	}
}

// --- Range matching ---

func TestMatchesSalaryRange(t *testing.T) {
	tests := []struct {
		name    string
		r       model.SalaryRange
		salary  int
		want    bool
		wantErr error
	}{
		{"inside", model.NewSalaryRange(50, 100), 75, true, nil},
		{"below", model.NewSalaryRange(50, 100), 49, false, nil},
		{"upper bound inclusive", model.NewSalaryRange(50, 100), 100, true, nil},
		{"lower bound inclusive", model.NewSalaryRange(50, 100), 50, true, nil},
		{"above", model.NewSalaryRange(50, 100), 101, false, nil},
		{"single point", model.NewSalaryRange(80, 80), 80, true, nil},
		{"inverted", model.NewSalaryRange(100, 50), 75, false, model.ErrInvalidRange},
		{"min missing", model.SalaryRange{Max: intPtr(100)}, 50, false, model.ErrMissingField},
		{"max missing", model.SalaryRange{Min: intPtr(10)}, 50, false, model.ErrMissingField},
		{"both missing", model.SalaryRange{}, 50, false, model.ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchesSalaryRange(tt.r, tt.salary)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MatchesSalaryRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesSalaryRange_MissingFieldNamesTheField(t *testing.T) {
	_, err := MatchesSalaryRange(model.SalaryRange{Min: intPtr(1)}, 5)
	var fe *model.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *model.FieldError, got %T", err)
	}
	if fe.Field != model.ColMaxSalary {
		t.Errorf("Field = %q, want %q", fe.Field, model.ColMaxSalary)
	}
}

func TestJobSalaryRange_NotANumber(t *testing.T) {
	tests := []struct {
		name      string
		job       model.Job
		wantField string
	}{
		{"text min", row("", "", "abc", "100"), model.ColMinSalary},
		{"empty max", row("", "", "100", ""), model.ColMaxSalary},
		{"decimal", row("", "", "10.5", "100"), model.ColMinSalary},
		{"signed min", row("", "", "+100", "200"), model.ColMinSalary},
		{"negative min", row("", "", "-50", "300"), model.ColMinSalary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.job.SalaryRange()
			if !errors.Is(err, model.ErrNotANumber) {
				t.Fatalf("error = %v, want ErrNotANumber", err)
			}
			var fe *model.FieldError
			if !errors.As(err, &fe) || fe.Field != tt.wantField {
				t.Errorf("error = %v, want field %s", err, tt.wantField)
			}
		})
	}
}

// --- Range filtering ---

func TestFilterBySalaryRange_ExcludesInvalidRows(t *testing.T) {
	got := FilterBySalaryRange(sampleJobs(), 1300)
	// Matches: PART_TIME 1000-3000, INTERN 500-1500.
	// Excluded: FULL_TIME 2000-5000 (out of range), empty, non numeric, inverted.
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	if got[0].JobType != "PART_TIME" || got[1].JobType != "INTERN" {
		t.Errorf("unexpected rows or order: %+v", got)
	}
}

func TestFilterBySalaryRange_InclusiveBounds(t *testing.T) {
	jobs := []model.Job{row("A", "", "100", "200"), row("B", "", "200", "300")}
	got := FilterBySalaryRange(jobs, 200)
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestFilterAndAggregationAgreeOnSignedSalaries(t *testing.T) {
	jobs := []model.Job{row("A", "", "+100", "+200"), row("B", "", "-50", "300")}

	if got := FilterBySalaryRange(jobs, 150); len(got) != 0 {
		t.Errorf("FilterBySalaryRange() kept %d rows, want 0", len(got))
	}
	r := &StaticReader{Jobs: jobs}
	if _, err := MinSalary(context.Background(), r, "jobs.csv"); !errors.Is(err, model.ErrEmptyDataset) {
		t.Errorf("MinSalary error = %v, want ErrEmptyDataset", err)
	}
}

func TestFilterBySalaryRange_AllInvalid(t *testing.T) {
	jobs := []model.Job{row("A", "", "x", "y"), row("B", "", "", "")}
	got := FilterBySalaryRange(jobs, 10)
	if got == nil || len(got) != 0 {
		t.Errorf("FilterBySalaryRange() = %#v, want empty slice", got)
	}
}

// --- Report ---

func TestBuildReport(t *testing.T) {
	r := &StaticReader{Jobs: sampleJobs()}
	rep, err := BuildReport(context.Background(), r, "jobs.csv")
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if r.reads != 1 {
		t.Errorf("expected a single read, got %d", r.reads)
	}
	if rep.Source != "jobs.csv" || rep.Rows != 6 {
		t.Errorf("Source/Rows = %q/%d", rep.Source, rep.Rows)
	}
	if len(rep.JobTypes) != 4 || len(rep.Industries) != 2 {
		t.Errorf("JobTypes = %v, Industries = %v", rep.JobTypes, rep.Industries)
	}
	if rep.MinSalary == nil || *rep.MinSalary != 500 {
		t.Errorf("MinSalary = %v, want 500", rep.MinSalary)
	}
	if rep.MaxSalary == nil || *rep.MaxSalary != 8000 {
		t.Errorf("MaxSalary = %v, want 8000", rep.MaxSalary)
	}
}

func TestBuildReport_NoSalaries(t *testing.T) {
	r := &StaticReader{Jobs: []model.Job{row("A", "B", "", "")}}
	rep, err := BuildReport(context.Background(), r, "x")
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if rep.MinSalary != nil || rep.MaxSalary != nil {
		t.Errorf("expected nil salary bounds, got %v/%v", rep.MinSalary, rep.MaxSalary)
	}
}
