package charts

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"

	"github.com/karvel-dev/bankscope/internal/stats"
)

// densityOverlay evaluates a Gaussian kernel density estimate over the
// data range and scales it to histogram counts (n * bin width), so the
// smoothed curve overlays a count histogram. Returns nil when the data
// cannot support an estimate.
func densityOverlay(vals []float64, bins int) plotter.XYs {
	if len(vals) < 2 || bins <= 0 {
		return nil
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if hi <= lo {
		return nil
	}
	bw := silverman(sorted)
	if bw <= 0 {
		return nil
	}

	n := float64(len(vals))
	binWidth := (hi - lo) / float64(bins)
	const samples = 200
	pts := make(plotter.XYs, samples)
	step := (hi - lo) / float64(samples-1)
	for i := 0; i < samples; i++ {
		x := lo + float64(i)*step
		var density float64
		for _, v := range vals {
			u := (x - v) / bw
			density += math.Exp(-0.5*u*u) / (bw * math.Sqrt(2*math.Pi))
		}
		density /= n
		pts[i].X = x
		pts[i].Y = density * n * binWidth
	}
	return pts
}

// silverman computes the rule-of-thumb bandwidth from sorted values.
func silverman(sorted []float64) float64 {
	sd := stat.StdDev(sorted, nil)
	iqr := stats.Quantile(sorted, 0.75) - stats.Quantile(sorted, 0.25)
	a := sd
	if iqr > 0 && iqr/1.34 < a {
		a = iqr / 1.34
	}
	if a <= 0 {
		return 0
	}
	return 0.9 * a * math.Pow(float64(len(sorted)), -0.2)
}
