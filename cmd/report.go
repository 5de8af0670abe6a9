package cmd

import (
	"github.com/spf13/cobra"

	"techpulse/utils/errors"
	"techpulse/utils/output"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the latest stored trend report",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	container, err := openContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	report, err := container.FetchLatestTrendReportUsecase.Execute(ctx)
	if errors.IsNotFound(err) {
		return &output.CLIError{
			Summary:    "no trend report stored yet",
			Suggestion: "run 'techpulse trends' first",
			ExitCode:   output.ExitGeneral,
		}
	}
	if err != nil {
		return toCLIError("failed to read trend report", err)
	}

	if reportJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	return renderReport(printer, report)
}
