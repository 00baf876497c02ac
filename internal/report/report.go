// Package report turns the cleaned table into the five closing insight
// statements. Every statement is backed by a computation over the table
// rather than fixed prose, so the text cannot drift from the charts.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/karvel-dev/bankscope/internal/dataset"
	"github.com/karvel-dev/bankscope/internal/stats"
)

// Insights computes the five summary statements in their fixed order.
func Insights(t *dataset.Table) []string {
	target := t.Numeric("y")
	return []string{
		subscriptionShare(target),
		ageComparison(t, target),
		jobSkew(t, target),
		economicCorrelation(t),
		durationCaveat(t, target),
	}
}

// Render prints the statements as a numbered list.
func Render(w io.Writer, statements []string) {
	header := color.New(color.FgCyan, color.Bold)
	_, _ = header.Fprintln(w, "## Key Insights from EDA")
	fmt.Fprintln(w, "Based on the analysis, here are some key findings:")
	for i, s := range statements {
		fmt.Fprintf(w, "%d. %s\n", i+1, s)
	}
}

func subscriptionShare(target []float64) string {
	var pos, total int
	for _, v := range target {
		switch v {
		case 1:
			pos++
			total++
		case 0:
			total++
		}
	}
	if total == 0 {
		return "No labeled clients were found, so the subscription share cannot be computed."
	}
	pct := float64(pos) * 100 / float64(total)
	return fmt.Sprintf("A total of %d clients subscribed to the term deposit, which is about %.2f%% of the dataset.", pos, pct)
}

func ageComparison(t *dataset.Table, target []float64) string {
	if !t.HasColumn("age") {
		return "The dataset has no age column, so ages of subscribers and non-subscribers cannot be compared."
	}
	age := t.Numeric("age")
	subscribed := stats.MeanWhere(age, mask(target, 1))
	declined := stats.MeanWhere(age, mask(target, 0))
	if math.IsNaN(subscribed) || math.IsNaN(declined) {
		return "One of the outcome groups is empty, so average ages cannot be compared."
	}
	direction := "about the same as"
	switch {
	case subscribed-declined > 0.1:
		direction = "slightly higher than"
	case declined-subscribed > 0.1:
		direction = "slightly lower than"
	}
	return fmt.Sprintf("The average age of subscribed clients (%.1f) is %s that of non-subscribed clients (%.1f).", subscribed, direction, declined)
}

func jobSkew(t *dataset.Table, target []float64) string {
	if !t.HasColumn("job") {
		return "The dataset has no job column, so per-occupation subscription rates cannot be compared."
	}
	jobs := t.Column("job").Records()
	type tally struct{ yes, total int }
	byJob := make(map[string]*tally)
	var overallYes, overallTotal int
	for i, job := range jobs {
		if i >= len(target) || job == "" || job == "NaN" {
			continue
		}
		ta := byJob[job]
		if ta == nil {
			ta = &tally{}
			byJob[job] = ta
		}
		switch target[i] {
		case 1:
			ta.yes++
			ta.total++
			overallYes++
			overallTotal++
		case 0:
			ta.total++
			overallTotal++
		}
	}
	if overallTotal == 0 {
		return "No labeled clients were found, so per-occupation subscription rates cannot be compared."
	}
	overall := float64(overallYes) / float64(overallTotal)

	type rated struct {
		job  string
		rate float64
	}
	var above []rated
	for job, ta := range byJob {
		if ta.total == 0 {
			continue
		}
		rate := float64(ta.yes) / float64(ta.total)
		if rate > overall {
			above = append(above, rated{job: job, rate: rate})
		}
	}
	if len(above) == 0 {
		return fmt.Sprintf("No job category subscribes above the overall rate of %.1f%%.", overall*100)
	}
	sort.Slice(above, func(i, j int) bool {
		if above[i].rate == above[j].rate {
			return above[i].job < above[j].job
		}
		return above[i].rate > above[j].rate
	})
	if len(above) > 2 {
		above = above[:2]
	}
	names := make([]string, len(above))
	for i, a := range above {
		names[i] = fmt.Sprintf("'%s'", a.job)
	}
	return fmt.Sprintf("Job categories like %s have a higher subscription rate relative to their total numbers.", strings.Join(names, " and "))
}

func economicCorrelation(t *dataset.Table) string {
	const a, b = "euribor3m", "emp.var.rate"
	if !t.HasColumn(a) || !t.HasColumn(b) {
		return "The economic indicator columns are absent, so their correlation cannot be assessed."
	}
	r := stats.Pearson(t.Numeric(a), t.Numeric(b))
	strength := "weak"
	switch {
	case math.Abs(r) >= 0.7:
		strength = "strong"
	case math.Abs(r) >= 0.4:
		strength = "moderate"
	}
	sign := "positive"
	if r < 0 {
		sign = "negative"
	}
	return fmt.Sprintf("There's a %s %s correlation (r=%.2f) between '%s' and '%s', which suggests they are related economic indicators. This can be important for feature selection.", strength, sign, r, a, b)
}

func durationCaveat(t *dataset.Table, target []float64) string {
	caveat := "However, this is for analysis only and should not be used in a predictive model as it's a look-ahead variable."
	if !t.HasColumn("duration") {
		return "The dataset has no duration column. " + caveat
	}
	dur := t.Numeric("duration")
	subscribed := stats.MeanWhere(dur, mask(target, 1))
	declined := stats.MeanWhere(dur, mask(target, 0))
	if math.IsNaN(subscribed) || math.IsNaN(declined) {
		return "The duration of the last contact is a highly predictive feature for the outcome. " + caveat
	}
	return fmt.Sprintf("The duration of the last contact is a highly predictive feature for the outcome: clients with longer calls were much more likely to subscribe (mean %.0fs for subscribers vs %.0fs). %s", subscribed, declined, caveat)
}

func mask(target []float64, want float64) []bool {
	out := make([]bool, len(target))
	for i, v := range target {
		out[i] = v == want
	}
	return out
}
