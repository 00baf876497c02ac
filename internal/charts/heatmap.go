package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/karvel-dev/bankscope/internal/dataset"
	"github.com/karvel-dev/bankscope/internal/stats"
)

// corrGrid adapts a correlation matrix to the plotter grid interface.
type corrGrid struct {
	m *stats.Matrix
}

func (g corrGrid) Dims() (c, r int)   { n := len(g.m.Columns); return n, n }
func (g corrGrid) Z(c, r int) float64 { return g.m.Values[r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// CorrelationMatrix computes the Pearson matrix over the table's numeric
// columns. Exposed so the report can reuse exactly what the heatmap shows.
func CorrelationMatrix(t *dataset.Table) *stats.Matrix {
	names := t.NumericColumns()
	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i] = t.Numeric(name)
	}
	return stats.CorrelationMatrix(names, cols)
}

func (r *Renderer) correlationHeatmap(t *dataset.Table, path, title string) error {
	m := CorrelationMatrix(t)

	p := plot.New()
	p.Title.Text = title

	if len(m.Columns) > 0 {
		cm := moreland.SmoothBlueRed()
		cm.SetMin(-1)
		cm.SetMax(1)
		hm := plotter.NewHeatMap(corrGrid{m: m}, cm.Palette(255))
		hm.Min = -1
		hm.Max = 1
		p.Add(hm)

		if err := annotate(p, m); err != nil {
			return err
		}

		p.NominalX(m.Columns...)
		p.NominalY(m.Columns...)
		p.X.Tick.Label.Rotation = math.Pi / 3
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	return p.Save(12*vg.Inch, 10*vg.Inch, path)
}

// annotate writes the two-decimal coefficient at the center of every cell.
func annotate(p *plot.Plot, m *stats.Matrix) error {
	n := len(m.Columns)
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, n*n),
		Labels: make([]string, 0, n*n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xyl.XYs = append(xyl.XYs, plotter.XY{X: float64(j), Y: float64(i)})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf("%.2f", m.Values[i][j]))
		}
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)
	return nil
}
