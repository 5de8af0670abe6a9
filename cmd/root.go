// Package cmd contains the techpulse CLI commands.
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"techpulse/config"
	"techpulse/di"
	"techpulse/utils/errors"
	"techpulse/utils/logger"
	"techpulse/utils/output"
)

var (
	colorFlag string
	quiet     bool
	verbose   bool
	version   = "dev"

	cfg     *config.Config
	printer *output.Printer

	loadConfig   = config.NewConfig
	newContainer = func(ctx context.Context, cfg *config.Config) (*di.ApplicationComponents, error) {
		return di.NewApplicationComponents(ctx, cfg)
	}
)

var rootCmd = &cobra.Command{
	Use:   "techpulse",
	Short: "Technology news ingestion and trend reports",
	Long: `techpulse pulls technology news from Hacker News, GitHub, Reddit, arXiv and
Product Hunt, ranks it by a time-decayed score and reports keyword trends.

Example usage:
  techpulse serve              # REST API plus scheduled ingestion
  techpulse ingest --limit 50  # Fetch and store once
  techpulse trends Rust AI     # Compute a trend report
  techpulse feed --ranked      # Show the ranked feed
  techpulse report             # Show the latest stored report`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always or never")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return output.ExitSuccess
	}

	p := printer
	if p == nil {
		p = output.NewPrinter(output.PrinterOptions{ColorMode: output.ColorNever})
	}

	var cliErr *output.CLIError
	if stderrors.As(err, &cliErr) {
		p.FormatError(cliErr)
		return cliErr.ExitCode
	}
	p.Error("%v", err)
	return output.ExitGeneral
}

func SetVersion(v string) {
	version = v
}

func initConfig(cmd *cobra.Command) error {
	mode, err := output.ParseColorMode(colorFlag)
	if err != nil {
		return &output.CLIError{Summary: err.Error(), ExitCode: output.ExitUsageError}
	}
	printer = output.NewPrinter(output.PrinterOptions{
		ColorMode: mode,
		Quiet:     quiet,
		Out:       cmd.OutOrStdout(),
		Err:       cmd.ErrOrStderr(),
	})

	cfg, err = loadConfig()
	if err != nil {
		return &output.CLIError{
			Summary:    "invalid configuration",
			Detail:     err.Error(),
			Suggestion: "check the environment variables or .env file",
			ExitCode:   output.ExitConfigError,
		}
	}

	// one-shot commands keep logs out of the way of their output
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger.InitLoggerWithConfig(level, "text", false)
	return nil
}

// openContainer wraps construction failures for the CLI.
func openContainer(ctx context.Context) (*di.ApplicationComponents, error) {
	container, err := newContainer(ctx, cfg)
	if err != nil {
		return nil, &output.CLIError{
			Summary:    "failed to initialise storage or sources",
			Detail:     err.Error(),
			Suggestion: fmt.Sprintf("check STORAGE_DRIVER (%s) and SOURCES_FILE", cfg.Database.Driver),
			ExitCode:   output.ExitConfigError,
		}
	}
	return container, nil
}

// toCLIError picks an exit code from the error category.
func toCLIError(summary string, err error) *output.CLIError {
	appErr := errors.Classify(err, "cmd", "CLI", summary, nil)
	code := output.ExitGeneral
	switch appErr.Code {
	case errors.CodeValidation:
		code = output.ExitUsageError
	case errors.CodeExternalAPI, errors.CodeRateLimit, errors.CodeTimeout:
		code = output.ExitUpstream
	case errors.CodeDatabase:
		code = output.ExitStorage
	}
	return &output.CLIError{Summary: summary, Detail: err.Error(), ExitCode: code}
}
