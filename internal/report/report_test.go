package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/karvel-dev/bankscope/internal/clean"
	"github.com/karvel-dev/bankscope/internal/dataset"
)

// tenRowTable has exactly 10 labeled rows, 3 of them subscribed.
func tenRowTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.FromRecords([][]string{
		{"age", "job", "poutcome", "duration", "euribor3m", "emp.var.rate", "y"},
		{"61", "retired", "success", "410", "1.0", "2.0", "yes"},
		{"58", "student", "nonexistent", "380", "1.2", "2.4", "yes"},
		{"55", "student", "nonexistent", "300", "1.4", "2.8", "yes"},
		{"41", "admin.", "failure", "90", "1.6", "3.2", "no"},
		{"38", "admin.", "nonexistent", "120", "1.8", "3.6", "no"},
		{"35", "services", "failure", "60", "2.0", "4.0", "no"},
		{"33", "admin.", "nonexistent", "75", "2.2", "4.4", "no"},
		{"29", "services", "nonexistent", "45", "2.4", "4.8", "no"},
		{"27", "admin.", "failure", "50", "2.6", "5.2", "no"},
		{"23", "services", "nonexistent", "30", "2.8", "5.6", "no"},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if _, err := clean.Apply(tbl); err != nil {
		t.Fatalf("clean: %v", err)
	}
	return tbl
}

func TestInsightsCount(t *testing.T) {
	statements := Insights(tenRowTable(t))
	if len(statements) != 5 {
		t.Fatalf("statements = %d, want 5", len(statements))
	}
}

func TestSubscriptionShare(t *testing.T) {
	statements := Insights(tenRowTable(t))
	first := statements[0]
	if !strings.Contains(first, "A total of 3 clients subscribed") {
		t.Fatalf("statement 1 missing count: %s", first)
	}
	if !strings.Contains(first, "30.00%") {
		t.Fatalf("statement 1 missing percentage: %s", first)
	}
}

func TestAgeComparisonComputed(t *testing.T) {
	statements := Insights(tenRowTable(t))
	// Subscribers in the fixture average 58, non-subscribers 32.125.
	second := statements[1]
	if !strings.Contains(second, "slightly higher than") {
		t.Fatalf("statement 2 direction wrong: %s", second)
	}
	if !strings.Contains(second, "58.0") {
		t.Fatalf("statement 2 missing subscriber mean: %s", second)
	}
}

func TestJobSkewComputed(t *testing.T) {
	statements := Insights(tenRowTable(t))
	third := statements[2]
	// retired (1/1) and student (2/2) subscribe above the 30% overall rate.
	if !strings.Contains(third, "'retired'") || !strings.Contains(third, "'student'") {
		t.Fatalf("statement 3 missing skewed jobs: %s", third)
	}
}

func TestEconomicCorrelationComputed(t *testing.T) {
	statements := Insights(tenRowTable(t))
	fourth := statements[3]
	// euribor3m is exactly half of emp.var.rate in the fixture.
	if !strings.Contains(fourth, "strong positive correlation") {
		t.Fatalf("statement 4 strength wrong: %s", fourth)
	}
	if !strings.Contains(fourth, "r=1.00") {
		t.Fatalf("statement 4 missing coefficient: %s", fourth)
	}
	if !strings.Contains(fourth, "euribor3m") || !strings.Contains(fourth, "emp.var.rate") {
		t.Fatalf("statement 4 missing column names: %s", fourth)
	}
}

func TestDurationCaveat(t *testing.T) {
	statements := Insights(tenRowTable(t))
	fifth := statements[4]
	if !strings.Contains(fifth, "look-ahead variable") {
		t.Fatalf("statement 5 missing caveat: %s", fifth)
	}
	if !strings.Contains(fifth, "363s for subscribers") {
		t.Fatalf("statement 5 missing computed means: %s", fifth)
	}
}

func TestInsightsDegradeWithoutEconomicColumns(t *testing.T) {
	tbl, err := dataset.FromRecords([][]string{
		{"age", "job", "poutcome", "duration", "y"},
		{"30", "student", "nonexistent", "120", "yes"},
		{"41", "admin.", "failure", "90", "no"},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if _, err := clean.Apply(tbl); err != nil {
		t.Fatalf("clean: %v", err)
	}
	statements := Insights(tbl)
	if len(statements) != 5 {
		t.Fatalf("statements = %d, want 5", len(statements))
	}
	if !strings.Contains(statements[3], "cannot be assessed") {
		t.Fatalf("statement 4 should degrade gracefully: %s", statements[3])
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Insights(tenRowTable(t)))
	out := buf.String()
	if !strings.Contains(out, "Key Insights from EDA") {
		t.Fatalf("missing header:\n%s", out)
	}
	for _, n := range []string{"1. ", "2. ", "3. ", "4. ", "5. "} {
		if !strings.Contains(out, n) {
			t.Fatalf("missing numbered statement %q:\n%s", n, out)
		}
	}
}
