// Package charts renders the fixed sequence of analysis figures as PNG
// artifacts. Each chart is an independent, read-only view over the
// cleaned table; RenderAll produces them in a fixed order and records
// them in a run manifest.
package charts

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/karvel-dev/bankscope/internal/dataset"
	"github.com/karvel-dev/bankscope/internal/stats"
	"github.com/karvel-dev/bankscope/internal/utils"
)

var (
	steelBlue = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	amber     = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	crimson   = color.RGBA{R: 220, G: 20, B: 60, A: 255}
)

// Artifact is one rendered chart, in render order.
type Artifact struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
}

// Renderer writes chart artifacts into OutDir.
type Renderer struct {
	OutDir string
	Bins   int
}

// NewRenderer returns a renderer with the given output directory and
// histogram bin count (30 when non-positive).
func NewRenderer(outDir string, bins int) *Renderer {
	if bins <= 0 {
		bins = 30
	}
	return &Renderer{OutDir: outDir, Bins: bins}
}

// RenderAll renders the seven charts sequentially, in the fixed order the
// analysis prescribes, and returns their artifacts in that order.
func (r *Renderer) RenderAll(t *dataset.Table) ([]Artifact, error) {
	if err := utils.EnsureDir(r.OutDir); err != nil {
		return nil, fmt.Errorf("ensure output dir: %w", err)
	}
	steps := []struct {
		name  string
		title string
		fn    func(*dataset.Table, string, string) error
	}{
		{"target_distribution.png", "Distribution of the Target Variable (Subscribed to Term Deposit)", r.targetDistribution},
		{"age_distribution.png", "Distribution of Age", r.ageDistribution},
		{"job_distribution.png", "Distribution of Job Categories", r.jobDistribution},
		{"age_by_outcome.png", "Age Distribution by Subscription Status", r.ageByOutcome},
		{"job_by_outcome.png", "Subscription Status by Job Category", r.jobByOutcome},
		{"correlation_heatmap.png", "Correlation Heatmap of Numerical Features", r.correlationHeatmap},
		{"duration_by_outcome.png", "Call Duration by Subscription Status", r.durationByOutcome},
	}
	artifacts := make([]Artifact, 0, len(steps))
	for _, st := range steps {
		path := filepath.Join(r.OutDir, st.name)
		if err := st.fn(t, path, st.title); err != nil {
			return nil, fmt.Errorf("render %s: %w", st.name, err)
		}
		artifacts = append(artifacts, Artifact{Name: st.name, Title: st.title, Path: path})
	}
	return artifacts, nil
}

func (r *Renderer) targetDistribution(t *dataset.Table, path, title string) error {
	no, yes := targetCounts(t)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Subscription Status"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(plotter.Values{no, yes}, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = steelBlue
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX("No", "Yes")

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

func (r *Renderer) ageDistribution(t *dataset.Table, path, title string) error {
	vals := stats.Finite(t.Numeric("age"))

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Frequency"

	if len(vals) > 0 {
		h, err := plotter.NewHist(plotter.Values(vals), r.Bins)
		if err != nil {
			return err
		}
		h.FillColor = steelBlue
		p.Add(h)

		if line := densityOverlay(vals, r.Bins); line != nil {
			l, err := plotter.NewLine(line)
			if err != nil {
				return err
			}
			l.Color = crimson
			l.Width = vg.Points(2)
			p.Add(l)
		}
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

func (r *Renderer) jobDistribution(t *dataset.Table, path, title string) error {
	order := jobOrder(t)
	counts := categoryCounts(t, "job")

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Count"
	p.Y.Label.Text = "Job"

	// NominalY places index 0 at the bottom, so reverse the descending
	// order to keep the most frequent category on top.
	display := reversed(order)
	vals := make(plotter.Values, len(display))
	for i, name := range display {
		vals[i] = counts[name]
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return err
	}
	bars.Horizontal = true
	bars.Color = steelBlue
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalY(display...)

	return p.Save(12*vg.Inch, 8*vg.Inch, path)
}

func (r *Renderer) ageByOutcome(t *dataset.Table, path, title string) error {
	return r.boxByOutcome(t, path, title, "age", "Age")
}

func (r *Renderer) durationByOutcome(t *dataset.Table, path, title string) error {
	return r.boxByOutcome(t, path, title, "duration", "Duration (in seconds)")
}

// boxByOutcome draws two box plots of the named column, split by target
// outcome, with the negative group on the left.
func (r *Renderer) boxByOutcome(t *dataset.Table, path, title, column, yLabel string) error {
	vals := t.Numeric(column)
	target := t.Numeric("y")

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Subscription Status"
	p.Y.Label.Text = yLabel

	for loc, want := range []float64{0, 1} {
		group := valuesWhere(vals, target, want)
		if len(group) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(loc), group)
		if err != nil {
			return err
		}
		p.Add(box)
	}
	p.NominalX("No", "Yes")

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

func (r *Renderer) jobByOutcome(t *dataset.Table, path, title string) error {
	display := reversed(jobOrder(t))
	jobs := t.Column("job").Records()
	target := t.Numeric("y")

	noCounts := make(map[string]float64)
	yesCounts := make(map[string]float64)
	for i, job := range jobs {
		if i >= len(target) {
			break
		}
		switch target[i] {
		case 0:
			noCounts[job]++
		case 1:
			yesCounts[job]++
		}
	}

	noVals := make(plotter.Values, len(display))
	yesVals := make(plotter.Values, len(display))
	for i, name := range display {
		noVals[i] = noCounts[name]
		yesVals[i] = yesCounts[name]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Count"
	p.Y.Label.Text = "Job"

	w := vg.Points(8)
	barsNo, err := plotter.NewBarChart(noVals, w)
	if err != nil {
		return err
	}
	barsNo.Horizontal = true
	barsNo.Color = steelBlue
	barsNo.LineStyle.Width = vg.Length(0)
	barsNo.Offset = -w / 2

	barsYes, err := plotter.NewBarChart(yesVals, w)
	if err != nil {
		return err
	}
	barsYes.Horizontal = true
	barsYes.Color = amber
	barsYes.LineStyle.Width = vg.Length(0)
	barsYes.Offset = w / 2

	p.Add(barsNo, barsYes)
	p.Legend.Add("No", barsNo)
	p.Legend.Add("Yes", barsYes)
	p.Legend.Top = true
	p.NominalY(display...)

	return p.Save(12*vg.Inch, 8*vg.Inch, path)
}

// targetCounts tallies the cleaned binary target; missing values are skipped.
func targetCounts(t *dataset.Table) (no, yes float64) {
	for _, v := range t.Numeric("y") {
		switch v {
		case 0:
			no++
		case 1:
			yes++
		}
	}
	return no, yes
}

// categoryCounts tallies occurrences per category of the named column.
func categoryCounts(t *dataset.Table, column string) map[string]float64 {
	counts := make(map[string]float64)
	for _, v := range t.Column(column).Records() {
		if v == "" || v == "NaN" {
			continue
		}
		counts[v]++
	}
	return counts
}

// jobOrder returns job categories by descending frequency, ties broken
// alphabetically. Charts 3 and 5 share this order.
func jobOrder(t *dataset.Table) []string {
	counts := categoryCounts(t, "job")
	order := make([]string, 0, len(counts))
	for name := range counts {
		order = append(order, name)
	}
	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] == counts[order[j]] {
			return order[i] < order[j]
		}
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

func valuesWhere(vals, target []float64, want float64) plotter.Values {
	var out plotter.Values
	for i, v := range vals {
		if i >= len(target) || target[i] != want {
			continue
		}
		out = append(out, v)
	}
	return plotter.Values(stats.Finite(out))
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
