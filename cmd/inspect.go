package cmd

import (
	"github.com/spf13/cobra"

	"github.com/karvel-dev/bankscope/internal/dataset"
	insp "github.com/karvel-dev/bankscope/internal/inspect"
)

var inspectSampleRows int

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Load a dataset and print its summary without cleaning or charts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		path := c.InputFile
		if len(args) == 1 {
			path = args[0]
		}
		rows := c.SampleRows
		if cmd.Flags().Changed("sample-rows") && inspectSampleRows > 0 {
			rows = inspectSampleRows
		}
		t, err := dataset.Load(path, c.DelimiterRune())
		if err != nil {
			return err
		}
		insp.Inspect(t, rows).Render(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspectSampleRows, "sample-rows", 5, "number of head rows to print")
}
