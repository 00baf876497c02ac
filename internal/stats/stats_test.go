package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDescribeNumeric(t *testing.T) {
	d := DescribeNumeric([]float64{1, 2, math.NaN(), 3, 4})
	if d.Count != 4 {
		t.Fatalf("count = %d, want 4", d.Count)
	}
	if !almostEqual(d.Mean, 2.5, 1e-9) {
		t.Fatalf("mean = %f, want 2.5", d.Mean)
	}
	if !almostEqual(d.Std, 1.2909944487358056, 1e-9) {
		t.Fatalf("std = %f", d.Std)
	}
	if d.Min != 1 || d.Max != 4 {
		t.Fatalf("min/max = %f/%f", d.Min, d.Max)
	}
	if !almostEqual(d.Q25, 1.75, 1e-9) {
		t.Fatalf("q25 = %f, want 1.75", d.Q25)
	}
	if !almostEqual(d.Q50, 2.5, 1e-9) {
		t.Fatalf("q50 = %f, want 2.5", d.Q50)
	}
	if !almostEqual(d.Q75, 3.25, 1e-9) {
		t.Fatalf("q75 = %f, want 3.25", d.Q75)
	}
}

func TestDescribeNumericEmpty(t *testing.T) {
	d := DescribeNumeric([]float64{math.NaN()})
	if d.Count != 0 {
		t.Fatalf("count = %d, want 0", d.Count)
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, c := range cases {
		if got := Quantile(sorted, c.q); !almostEqual(got, c.want, 1e-9) {
			t.Fatalf("Quantile(%v) = %f, want %f", c.q, got, c.want)
		}
	}
	if got := Quantile(nil, 0.5); got != 0 {
		t.Fatalf("Quantile(empty) = %f, want 0", got)
	}
}

func TestMeanWhere(t *testing.T) {
	vals := []float64{10, 20, 30, math.NaN()}
	cond := []bool{true, false, true, true}
	if got := MeanWhere(vals, cond); !almostEqual(got, 20, 1e-9) {
		t.Fatalf("mean = %f, want 20", got)
	}
	if got := MeanWhere(vals, []bool{false, false, false, false}); !math.IsNaN(got) {
		t.Fatalf("expected NaN for empty selection, got %f", got)
	}
}

func TestPearson(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	up := []float64{2, 4, 6, 8, 10}
	down := []float64{10, 8, 6, 4, 2}
	if r := Pearson(x, up); !almostEqual(r, 1, 1e-9) {
		t.Fatalf("r = %f, want 1", r)
	}
	if r := Pearson(x, down); !almostEqual(r, -1, 1e-9) {
		t.Fatalf("r = %f, want -1", r)
	}
	// Missing pairs are dropped, not zeroed.
	withNaN := []float64{2, math.NaN(), 6, 8, 10}
	if r := Pearson(x, withNaN); !almostEqual(r, 1, 1e-9) {
		t.Fatalf("r with NaN = %f, want 1", r)
	}
	// Degenerate inputs are reported as no correlation.
	if r := Pearson([]float64{1}, []float64{2}); r != 0 {
		t.Fatalf("r of single pair = %f, want 0", r)
	}
	if r := Pearson([]float64{3, 3, 3}, x[:3]); r != 0 {
		t.Fatalf("r of constant series = %f, want 0", r)
	}
}

func TestCorrelationMatrix(t *testing.T) {
	names := []string{"a", "b", "c"}
	cols := [][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{4, 3, 2, 1},
	}
	m := CorrelationMatrix(names, cols)
	n := len(m.Columns)
	if n != 3 {
		t.Fatalf("columns = %d, want 3", n)
	}
	for i := 0; i < n; i++ {
		if !almostEqual(m.Values[i][i], 1, 1e-9) {
			t.Fatalf("diagonal [%d][%d] = %f, want 1", i, i, m.Values[i][i])
		}
		for j := 0; j < n; j++ {
			if !almostEqual(m.Values[i][j], m.Values[j][i], 1e-12) {
				t.Fatalf("matrix not symmetric at [%d][%d]", i, j)
			}
			if want := Pearson(cols[i], cols[j]); i != j && !almostEqual(m.Values[i][j], want, 1e-12) {
				t.Fatalf("[%d][%d] = %f, want %f", i, j, m.Values[i][j], want)
			}
		}
	}
	if !almostEqual(m.Values[0][1], 1, 1e-9) {
		t.Fatalf("a~b = %f, want 1", m.Values[0][1])
	}
	if !almostEqual(m.Values[0][2], -1, 1e-9) {
		t.Fatalf("a~c = %f, want -1", m.Values[0][2])
	}
}
