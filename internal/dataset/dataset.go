// Package dataset owns the in-memory table that the analysis pipeline
// threads through its stages. The table wraps a gota DataFrame; every
// stage receives it explicitly rather than touching shared state.
package dataset

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DownloadHint points at the UCI archive hosting the bank-marketing dataset.
const DownloadHint = "https://archive.ics.uci.edu/ml/machine-learning-databases/00222/bank-additional.zip"

// MissingInputError indicates the input CSV does not exist at the expected path.
// It is the only load failure the tool handles specially; anything else
// (malformed rows, bad encoding) propagates as an unrecoverable startup error.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file %q was not found; download the dataset from %s and place it in the working directory", e.Path, DownloadHint)
}

// Table is the dataset threaded through the pipeline stages.
type Table struct {
	df dataframe.DataFrame
}

// Load reads a delimited file with a header row into a Table.
func Load(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingInputError{Path: path}
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(true),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read %s: %w", path, df.Err)
	}
	return &Table{df: df}, nil
}

// FromRecords builds a Table from raw records (header row first).
// Used by tests and by callers that already hold parsed data.
func FromRecords(records [][]string) (*Table, error) {
	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return nil, fmt.Errorf("load records: %w", df.Err)
	}
	return &Table{df: df}, nil
}

// Rows returns the number of data rows.
func (t *Table) Rows() int { return t.df.Nrow() }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.df.Ncol() }

// Names returns the column names in file order.
func (t *Table) Names() []string { return t.df.Names() }

// Types returns the inferred column types, index-aligned with Names.
func (t *Table) Types() []series.Type { return t.df.Types() }

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Column returns the named column. The caller is expected to know the
// schema; a missing column is a programming error surfaced by the series.
func (t *Table) Column(name string) series.Series {
	return t.df.Col(name)
}

// Numeric returns the named column as floats; non-numeric entries are NaN.
func (t *Table) Numeric(name string) []float64 {
	return t.df.Col(name).Float()
}

// NumericColumns returns the names of all int and float columns, in order.
func (t *Table) NumericColumns() []string {
	var out []string
	types := t.df.Types()
	for i, name := range t.df.Names() {
		if types[i] == series.Int || types[i] == series.Float {
			out = append(out, name)
		}
	}
	return out
}

// Records returns the data rows as strings, without the header row.
func (t *Table) Records() [][]string {
	recs := t.df.Records()
	if len(recs) <= 1 {
		return nil
	}
	return recs[1:]
}

// Head returns up to n data rows.
func (t *Table) Head(n int) [][]string {
	recs := t.Records()
	if len(recs) > n {
		recs = recs[:n]
	}
	return recs
}

// DuplicateCount returns the number of rows that exactly repeat an earlier row.
func (t *Table) DuplicateCount() int {
	seen := make(map[string]struct{}, t.df.Nrow())
	dups := 0
	for _, rec := range t.Records() {
		key := strings.Join(rec, "\x1f")
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}

// Dedupe removes exact duplicate rows in place, keeping the first
// occurrence and preserving row order. It returns how many rows were dropped.
func (t *Table) Dedupe() int {
	recs := t.Records()
	seen := make(map[string]struct{}, len(recs))
	keep := make([]int, 0, len(recs))
	for i, rec := range recs {
		key := strings.Join(rec, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}
	dropped := len(recs) - len(keep)
	if dropped == 0 {
		return 0
	}
	sub := t.df.Subset(keep)
	if sub.Err != nil {
		// Subset over indexes we just built cannot fail; keep the table intact.
		return 0
	}
	t.df = sub
	return dropped
}

// ReplaceColumn swaps in a column with the same name and length.
func (t *Table) ReplaceColumn(s series.Series) error {
	mut := t.df.Mutate(s)
	if mut.Err != nil {
		return fmt.Errorf("replace column %s: %w", s.Name, mut.Err)
	}
	t.df = mut
	return nil
}
