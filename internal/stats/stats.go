// Package stats provides the descriptive statistics used by the
// inspector, charts, and report. All computation delegates to gonum.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Describe captures pandas-style descriptive statistics for a numeric column.
type Describe struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Finite returns vals with NaN and Inf entries removed.
func Finite(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// DescribeNumeric computes count, mean, std, min, quartiles, and max,
// ignoring missing values.
func DescribeNumeric(vals []float64) Describe {
	clean := Finite(vals)
	d := Describe{Count: len(clean)}
	if len(clean) == 0 {
		return d
	}
	sorted := make([]float64, len(clean))
	copy(sorted, clean)
	sort.Float64s(sorted)

	d.Mean = stat.Mean(clean, nil)
	if len(clean) > 1 {
		d.Std = stat.StdDev(clean, nil)
	}
	d.Min = sorted[0]
	d.Max = sorted[len(sorted)-1]
	d.Q25 = Quantile(sorted, 0.25)
	d.Q50 = Quantile(sorted, 0.5)
	d.Q75 = Quantile(sorted, 0.75)
	return d
}

// Quantile interpolates linearly between order statistics, the same
// convention the descriptive tables assume. Input must be sorted.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// MeanWhere averages vals[i] over rows where cond[i] is true,
// skipping missing values. Returns NaN when no row qualifies.
func MeanWhere(vals []float64, cond []bool) float64 {
	var sum float64
	var n int
	for i, v := range vals {
		if i >= len(cond) || !cond[i] {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Pearson computes the Pearson correlation of x and y over rows where
// both values are finite. Returns 0 when fewer than two such rows exist
// or when either side has no variance.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) || math.IsInf(x[i], 0) || math.IsInf(y[i], 0) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return 0
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// Matrix holds a symmetric Pearson correlation matrix.
type Matrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

// CorrelationMatrix computes pairwise Pearson correlations across the
// given columns. The diagonal is exactly 1.
func CorrelationMatrix(names []string, cols [][]float64) *Matrix {
	n := len(names)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := Pearson(cols[i], cols[j])
			values[i][j] = r
			values[j][i] = r
		}
	}
	return &Matrix{Columns: names, Values: values}
}
