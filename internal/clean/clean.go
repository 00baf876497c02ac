// Package clean applies the two recodings the analysis depends on:
// renaming the poutcome sentinel and mapping the target label to 0/1.
package clean

import (
	"fmt"

	"github.com/go-gota/gota/series"

	"github.com/karvel-dev/bankscope/internal/dataset"
)

const (
	// Sentinel is the placeholder category the source data uses for
	// clients with no previous campaign contact.
	Sentinel = "nonexistent"
	// SentinelReadable replaces Sentinel for readability.
	SentinelReadable = "no_previous_campaign"
)

// Result reports what the cleaning pass changed.
type Result struct {
	SentinelsRenamed int
	// TargetUnmapped counts y values outside {"yes","no"} that were
	// recoded to missing. The caller decides whether to warn.
	TargetUnmapped int
}

// Apply runs both recodings in place and returns what changed.
func Apply(t *dataset.Table) (Result, error) {
	var res Result
	renamed, err := RenameSentinel(t)
	if err != nil {
		return res, err
	}
	res.SentinelsRenamed = renamed

	unmapped, err := RecodeTarget(t)
	if err != nil {
		return res, err
	}
	res.TargetUnmapped = unmapped
	return res, nil
}

// RenameSentinel replaces every occurrence of Sentinel in the poutcome
// column with SentinelReadable. All other values pass through unchanged.
func RenameSentinel(t *dataset.Table) (int, error) {
	if !t.HasColumn("poutcome") {
		return 0, fmt.Errorf("rename sentinel: column %q not found", "poutcome")
	}
	recs := t.Column("poutcome").Records()
	out := make([]string, len(recs))
	renamed := 0
	for i, v := range recs {
		if v == Sentinel {
			out[i] = SentinelReadable
			renamed++
		} else {
			out[i] = v
		}
	}
	if renamed == 0 {
		return 0, nil
	}
	if err := t.ReplaceColumn(series.New(out, series.String, "poutcome")); err != nil {
		return 0, err
	}
	return renamed, nil
}

// RecodeTarget maps the y column from {"yes","no"} to {1,0}.
//
// Values outside the mapping become explicit missing (NaN) elements, and
// their count is returned so callers can surface it instead of losing data
// silently. Values already recoded ({0,1} or missing) pass through
// unchanged, making a second application a no-op.
func RecodeTarget(t *dataset.Table) (int, error) {
	if !t.HasColumn("y") {
		return 0, fmt.Errorf("recode target: column %q not found", "y")
	}
	recs := t.Column("y").Records()
	out := make([]string, len(recs))
	unmapped := 0
	for i, v := range recs {
		switch v {
		case "yes", "1":
			out[i] = "1"
		case "no", "0":
			out[i] = "0"
		case "NaN":
			out[i] = "NaN"
		default:
			out[i] = "NaN"
			unmapped++
		}
	}
	if err := t.ReplaceColumn(series.New(out, series.Int, "y")); err != nil {
		return 0, err
	}
	return unmapped, nil
}
