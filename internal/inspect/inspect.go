// Package inspect produces the initial read-only summary of the dataset:
// shape, column types, descriptive statistics, and the duplicate-row
// check. Deduplication is the only mutation this package performs.
package inspect

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/go-gota/gota/series"
	"github.com/olekukonko/tablewriter"

	"github.com/karvel-dev/bankscope/internal/dataset"
	"github.com/karvel-dev/bankscope/internal/stats"
)

// ColumnInfo describes one column's inferred type and fill level.
type ColumnInfo struct {
	Name    string
	Type    string
	NonNull int
}

// NumericSummary pairs a column name with its descriptive statistics.
type NumericSummary struct {
	Name string
	stats.Describe
}

// CategoricalSummary mirrors the pandas describe(include='object') row.
type CategoricalSummary struct {
	Name   string
	Count  int
	Unique int
	Top    string
	Freq   int
}

// Summary is the full inspection result. Shape and statistics reflect the
// table as loaded; Deduped reports whether duplicates were removed afterwards.
type Summary struct {
	Columns       []string
	Head          [][]string
	RowCount      int
	ColCount      int
	Info          []ColumnInfo
	Numeric       []NumericSummary
	Categorical   []CategoricalSummary
	DuplicateRows int
	Deduped       bool
}

// Inspect summarizes the table and, if exact duplicate rows exist,
// removes them keeping first occurrences.
func Inspect(t *dataset.Table, sampleRows int) *Summary {
	if sampleRows <= 0 {
		sampleRows = 5
	}
	s := &Summary{
		Columns:  t.Names(),
		Head:     t.Head(sampleRows),
		RowCount: t.Rows(),
		ColCount: t.Cols(),
	}

	types := t.Types()
	for i, name := range t.Names() {
		recs := t.Column(name).Records()
		nonNull := 0
		for _, v := range recs {
			if v != "" && v != "NaN" {
				nonNull++
			}
		}
		s.Info = append(s.Info, ColumnInfo{Name: name, Type: string(types[i]), NonNull: nonNull})

		switch types[i] {
		case series.Int, series.Float:
			s.Numeric = append(s.Numeric, NumericSummary{
				Name:     name,
				Describe: stats.DescribeNumeric(t.Numeric(name)),
			})
		case series.String:
			s.Categorical = append(s.Categorical, describeCategorical(name, recs))
		}
	}

	s.DuplicateRows = t.DuplicateCount()
	if s.DuplicateRows > 0 {
		t.Dedupe()
		s.Deduped = true
	}
	return s
}

func describeCategorical(name string, recs []string) CategoricalSummary {
	counts := make(map[string]int)
	nonNull := 0
	for _, v := range recs {
		if v == "" || v == "NaN" {
			continue
		}
		nonNull++
		counts[v]++
	}
	cs := CategoricalSummary{Name: name, Count: nonNull, Unique: len(counts)}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if counts[k] > cs.Freq {
			cs.Top = k
			cs.Freq = counts[k]
		}
	}
	return cs
}

// Render writes the summary to w in the console layout the tool prints
// during a run.
func (s *Summary) Render(w io.Writer) {
	header := color.New(color.FgCyan, color.Bold)
	_, _ = header.Fprintln(w, "## Initial Data Inspection")

	fmt.Fprintf(w, "\nFirst %d rows of the dataset:\n", len(s.Head))
	head := tablewriter.NewWriter(w)
	head.SetHeader(s.Columns)
	for _, row := range s.Head {
		head.Append(row)
	}
	head.Render()

	fmt.Fprintf(w, "\nDataset has %d rows and %d columns.\n", s.RowCount, s.ColCount)

	fmt.Fprintln(w, "\nColumn types and non-null counts:")
	info := tablewriter.NewWriter(w)
	info.SetHeader([]string{"Column", "Type", "Non-Null"})
	for _, c := range s.Info {
		info.Append([]string{c.Name, c.Type, fmt.Sprintf("%d", c.NonNull)})
	}
	info.Render()

	if len(s.Numeric) > 0 {
		fmt.Fprintln(w, "\nDescriptive statistics for numerical columns:")
		num := tablewriter.NewWriter(w)
		num.SetHeader([]string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
		for _, n := range s.Numeric {
			num.Append([]string{
				n.Name,
				fmt.Sprintf("%d", n.Count),
				fmt.Sprintf("%.3f", n.Mean),
				fmt.Sprintf("%.3f", n.Std),
				fmt.Sprintf("%.3f", n.Min),
				fmt.Sprintf("%.3f", n.Q25),
				fmt.Sprintf("%.3f", n.Q50),
				fmt.Sprintf("%.3f", n.Q75),
				fmt.Sprintf("%.3f", n.Max),
			})
		}
		num.Render()
	}

	if len(s.Categorical) > 0 {
		fmt.Fprintln(w, "\nDescriptive statistics for categorical columns:")
		cat := tablewriter.NewWriter(w)
		cat.SetHeader([]string{"Column", "Count", "Unique", "Top", "Freq"})
		for _, c := range s.Categorical {
			cat.Append([]string{c.Name, fmt.Sprintf("%d", c.Count), fmt.Sprintf("%d", c.Unique), c.Top, fmt.Sprintf("%d", c.Freq)})
		}
		cat.Render()
	}

	fmt.Fprintf(w, "\nNumber of duplicate rows: %d\n", s.DuplicateRows)
	if s.Deduped {
		fmt.Fprintln(w, "✓ Duplicate rows have been removed.")
	}
}
