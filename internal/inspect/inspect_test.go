package inspect

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/karvel-dev/bankscope/internal/dataset"
)

func fixtureTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.FromRecords([][]string{
		{"age", "job", "y"},
		{"30", "student", "yes"},
		{"41", "admin.", "no"},
		{"30", "student", "yes"},
		{"55", "retired", "yes"},
		{"23", "services", "no"},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return tbl
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestInspectShapeAndDedupe(t *testing.T) {
	tbl := fixtureTable(t)
	s := Inspect(tbl, 5)

	// Shape reflects the table as loaded.
	if s.RowCount != 5 || s.ColCount != 3 {
		t.Fatalf("shape = %dx%d, want 5x3", s.RowCount, s.ColCount)
	}
	if s.DuplicateRows != 1 {
		t.Fatalf("duplicates = %d, want 1", s.DuplicateRows)
	}
	if !s.Deduped {
		t.Fatal("expected dedupe to run")
	}
	// Row count equals input rows minus exact duplicates after inspection.
	if tbl.Rows() != 4 {
		t.Fatalf("rows after inspect = %d, want 4", tbl.Rows())
	}
}

func TestInspectNoDuplicates(t *testing.T) {
	tbl, err := dataset.FromRecords([][]string{
		{"age", "y"},
		{"30", "yes"},
		{"41", "no"},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	s := Inspect(tbl, 5)
	if s.DuplicateRows != 0 || s.Deduped {
		t.Fatalf("unexpected dedupe: %+v", s)
	}
	if tbl.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.Rows())
	}
}

func TestInspectStatistics(t *testing.T) {
	tbl := fixtureTable(t)
	s := Inspect(tbl, 5)

	if len(s.Numeric) != 1 || s.Numeric[0].Name != "age" {
		t.Fatalf("numeric summaries = %+v", s.Numeric)
	}
	age := s.Numeric[0]
	if age.Count != 5 {
		t.Fatalf("age count = %d, want 5", age.Count)
	}
	if !almostEqual(age.Mean, 35.8, 1e-9) {
		t.Fatalf("age mean = %f, want 35.8", age.Mean)
	}
	if age.Min != 23 || age.Max != 55 {
		t.Fatalf("age min/max = %f/%f", age.Min, age.Max)
	}
	if !almostEqual(age.Q50, 30, 1e-9) {
		t.Fatalf("age median = %f, want 30", age.Q50)
	}

	var job *CategoricalSummary
	for i := range s.Categorical {
		if s.Categorical[i].Name == "job" {
			job = &s.Categorical[i]
		}
	}
	if job == nil {
		t.Fatalf("missing job summary: %+v", s.Categorical)
	}
	if job.Count != 5 || job.Unique != 4 {
		t.Fatalf("job count/unique = %d/%d, want 5/4", job.Count, job.Unique)
	}
	if job.Top != "student" || job.Freq != 2 {
		t.Fatalf("job top = %q(%d), want student(2)", job.Top, job.Freq)
	}
}

func TestInspectHead(t *testing.T) {
	tbl := fixtureTable(t)
	s := Inspect(tbl, 2)
	if len(s.Head) != 2 {
		t.Fatalf("head rows = %d, want 2", len(s.Head))
	}
	if s.Head[0][1] != "student" || s.Head[1][1] != "admin." {
		t.Fatalf("head rows out of order: %v", s.Head)
	}
}

func TestRender(t *testing.T) {
	tbl := fixtureTable(t)
	s := Inspect(tbl, 5)
	var buf bytes.Buffer
	s.Render(&buf)
	out := buf.String()

	for _, want := range []string{
		"Initial Data Inspection",
		"Dataset has 5 rows and 3 columns.",
		"Number of duplicate rows: 1",
		"Duplicate rows have been removed.",
		"student",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render output missing %q:\n%s", want, out)
		}
	}
}
