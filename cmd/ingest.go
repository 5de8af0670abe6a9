package cmd

import (
	"github.com/spf13/cobra"

	"techpulse/utils/output"
)

const maxIngestLimit = 500

var ingestLimit int

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch articles from the configured sources once",
	RunE:  runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().IntVarP(&ingestLimit, "limit", "n", 0, "articles to request per source (default INGEST_LIMIT)")
}

func runIngest(cmd *cobra.Command, args []string) error {
	limit := ingestLimit
	if limit == 0 {
		limit = cfg.Ingest.Limit
	}
	if limit < 1 || limit > maxIngestLimit {
		return &output.CLIError{
			Summary:  "limit must be between 1 and 500",
			ExitCode: output.ExitUsageError,
		}
	}

	ctx := cmd.Context()
	container, err := openContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	printer.Info("Ingesting up to %d articles from %s", limit, container.SourceGateway.Name())
	n, err := container.IngestArticlesUsecase.Execute(ctx, limit)
	if err != nil {
		return toCLIError("ingestion failed", err)
	}
	if n == 0 {
		printer.Warning("%s returned no articles", container.SourceGateway.Name())
		return nil
	}
	printer.Success("Stored %d articles", n)
	return nil
}
