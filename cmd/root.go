package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/karvel-dev/bankscope/internal/config"
	"github.com/karvel-dev/bankscope/internal/dataset"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "bankscope",
	Short: "bankscope: exploratory analysis of the bank-marketing dataset",
	Long:  `bankscope loads the UCI bank-marketing CSV, prints descriptive statistics, cleans the target and outcome columns, renders the analysis charts as PNG files, and closes with a computed summary of observations.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		var missing *dataset.MissingInputError
		if errors.As(err, &missing) {
			fmt.Fprintln(os.Stderr, "✗ Error:", missing.Error())
			fmt.Fprintln(os.Stderr, "Please download the dataset from the UCI Machine Learning Repository and place it in the working directory.")
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.bankscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults below
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// activeConfig returns the loaded configuration, or built-in defaults when
// config loading failed.
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		InputFile:     "bank-additional-full.csv",
		Delimiter:     ";",
		OutputDir:     "charts",
		HistogramBins: 30,
		SampleRows:    5,
	}
}
