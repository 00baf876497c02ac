package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/karvel-dev/bankscope/internal/charts"
	"github.com/karvel-dev/bankscope/internal/clean"
	cfgpkg "github.com/karvel-dev/bankscope/internal/config"
	"github.com/karvel-dev/bankscope/internal/dataset"
	insp "github.com/karvel-dev/bankscope/internal/inspect"
	"github.com/karvel-dev/bankscope/internal/report"
)

var (
	runOutputDir  string
	runBins       int
	runSampleRows int
	runSkipCharts bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run the full EDA pipeline: load, inspect, clean, plot, report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := *activeConfig()
		if runOutputDir != "" {
			c.OutputDir = runOutputDir
		}
		if cmd.Flags().Changed("bins") && runBins > 0 {
			c.HistogramBins = runBins
		}
		if cmd.Flags().Changed("sample-rows") && runSampleRows > 0 {
			c.SampleRows = runSampleRows
		}
		path := c.InputFile
		if len(args) == 1 {
			path = args[0]
		}
		return runPipeline(cmd.OutOrStdout(), &c, path, runSkipCharts)
	},
}

// runPipeline executes the stages in their fixed order, threading the
// table value from one stage to the next.
func runPipeline(w io.Writer, c *cfgpkg.Global, path string, skipCharts bool) error {
	t, err := dataset.Load(path, c.DelimiterRune())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Dataset loaded successfully! Let's get started with EDA. 🕵️")

	summary := insp.Inspect(t, c.SampleRows)
	summary.Render(w)

	header := color.New(color.FgCyan, color.Bold)
	_, _ = header.Fprintln(w, "\n## Data Cleaning and Preprocessing")
	res, err := clean.Apply(t)
	if err != nil {
		return err
	}
	if res.SentinelsRenamed > 0 {
		fmt.Fprintf(w, "Renamed %d '%s' entries in 'poutcome' to '%s'.\n", res.SentinelsRenamed, clean.Sentinel, clean.SentinelReadable)
	}
	fmt.Fprintln(w, "Target variable 'y' has been mapped to 1 (yes) and 0 (no).")
	if res.TargetUnmapped > 0 {
		fmt.Fprintf(w, "⚠ Warning: %d value(s) in 'y' were outside {\"yes\",\"no\"} and are now missing.\n", res.TargetUnmapped)
	}

	if !skipCharts {
		_, _ = header.Fprintln(w, "\n## Charts")
		r := charts.NewRenderer(c.OutputDir, c.HistogramBins)
		artifacts, err := r.RenderAll(t)
		if err != nil {
			return err
		}
		for _, a := range artifacts {
			fmt.Fprintf(w, "✓ Wrote %s\n", a.Path)
		}
		manifestPath, err := charts.WriteManifest(c.OutputDir, path, t.Rows(), artifacts)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "✓ Wrote %s\n", manifestPath)
	}

	fmt.Fprintln(w)
	report.Render(w, report.Insights(t))
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runOutputDir, "output", "o", "", "directory for chart artifacts (default from config)")
	runCmd.Flags().IntVar(&runBins, "bins", 30, "histogram bin count for the age distribution")
	runCmd.Flags().IntVar(&runSampleRows, "sample-rows", 5, "number of head rows to print")
	runCmd.Flags().BoolVar(&runSkipCharts, "skip-charts", false, "skip chart rendering (inspection and report only)")
}
