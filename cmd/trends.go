package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var trendsJSON bool

var trendsCmd = &cobra.Command{
	Use:   "trends [keyword...]",
	Short: "Compute and store a trend report",
	Long: `Scan the newest 100 stored articles for each keyword and store the report.
Without arguments the TREND_KEYWORDS setting is used, then the built-in set
(Rust, AI, Cloud, Crypto, Apple, Linux).`,
	RunE: runTrends,
}

func init() {
	rootCmd.AddCommand(trendsCmd)
	trendsCmd.Flags().BoolVar(&trendsJSON, "json", false, "output as JSON")
}

func runTrends(cmd *cobra.Command, args []string) error {
	keywords := args
	if len(keywords) == 0 {
		keywords = cfg.Ingest.Keywords
	}

	ctx := cmd.Context()
	container, err := openContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	report, err := container.RefreshTrendsUsecase.Execute(ctx, keywords, time.Now().Unix())
	if err != nil {
		return toCLIError("trend calculation failed", err)
	}

	if trendsJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	return renderReport(printer, report)
}
