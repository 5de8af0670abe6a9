package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"techpulse/job"
	"techpulse/rest"
	"techpulse/utils/logger"
	"techpulse/utils/otel"
)

var noJobs bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API and the scheduled jobs",
	Long: `Start the HTTP server on SERVER_PORT together with the ingestion job
(INGEST_SCHEDULE) and the trend job (TREND_SCHEDULE). SIGINT or SIGTERM
drains in-flight requests and jobs before exiting.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&noJobs, "no-jobs", false, "serve the API without scheduled jobs")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := otel.InitProvider(ctx, cfg.OTel)
	if err != nil {
		return toCLIError("failed to initialise telemetry", err)
	}
	log := logger.InitLoggerWithConfig(cfg.Logging.Level, cfg.Logging.Format, cfg.OTel.Enabled)

	container, err := openContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	scheduler := job.NewJobScheduler()
	if !noJobs {
		scheduler.Add(job.IngestJob(cfg.Ingest.Schedule, cfg.Ingest.JobTimeout, cfg.Ingest.Limit, container.IngestArticlesUsecase))
		scheduler.Add(job.TrendJob(cfg.Ingest.TrendSchedule, cfg.Ingest.JobTimeout, cfg.Ingest.Keywords, container.RefreshTrendsUsecase, nil))
	}
	if err := scheduler.Start(ctx); err != nil {
		return toCLIError("invalid job schedule", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr, "jobs", !noJobs)
		if err := e.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case serveErr = <-errCh:
		log.Error("server stopped unexpectedly", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
	stop()
	scheduler.Shutdown()
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Warn("telemetry shutdown failed", "error", err)
	}
	log.Info("server stopped")

	if serveErr != nil {
		return toCLIError("server failed", serveErr)
	}
	return nil
}
