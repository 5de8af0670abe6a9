package job

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"techpulse/utils/logger"
	"techpulse/utils/otel"
)

// Job is a background task run on a cron spec such as "@every 30m".
type Job struct {
	Name       string
	Spec       string
	Timeout    time.Duration
	RunOnStart bool
	Fn         func(ctx context.Context) error
}

// JobScheduler runs jobs on their cron specs until the start context ends.
// An invocation is skipped while the previous one is still running.
type JobScheduler struct {
	jobs []Job
	cron *cron.Cron
	wg   sync.WaitGroup
}

func NewJobScheduler() *JobScheduler {
	return &JobScheduler{}
}

func (s *JobScheduler) Add(j Job) {
	s.jobs = append(s.jobs, j)
}

// Start validates every spec before scheduling anything.
func (s *JobScheduler) Start(ctx context.Context) error {
	log := cronLogger{logger: logger.FromContext(ctx)}
	s.cron = cron.New(cron.WithLogger(log), cron.WithChain(cron.Recover(log)))

	for _, j := range s.jobs {
		job := j
		wrapped := cron.NewChain(cron.SkipIfStillRunning(log)).Then(cron.FuncJob(func() {
			s.executeJob(ctx, job)
		}))
		if _, err := s.cron.AddJob(job.Spec, wrapped); err != nil {
			return fmt.Errorf("schedule job %s (%q): %w", job.Name, job.Spec, err)
		}
		if job.RunOnStart {
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				wrapped.Run()
			}()
		}
	}

	s.cron.Start()
	go func() {
		<-ctx.Done()
		stopped := s.cron.Stop()
		<-stopped.Done()
		logger.Logger.Info("job scheduler stopped")
	}()
	return nil
}

func (s *JobScheduler) executeJob(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	jobCtx := logger.WithOperation(ctx, j.Name)
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(jobCtx, j.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := j.Fn(jobCtx)
	elapsed := time.Since(start)

	attrs := metric.WithAttributes(attribute.String("job", j.Name))
	if m := otel.Metrics; m != nil {
		m.JobRunsTotal.Add(ctx, 1, attrs)
		m.JobDuration.Record(ctx, elapsed.Seconds(), attrs)
		if err != nil {
			m.JobErrorsTotal.Add(ctx, 1, attrs)
		}
	}

	if err != nil {
		logger.FromContext(jobCtx).ErrorContext(ctx, "job failed", "job", j.Name, "duration_ms", elapsed.Milliseconds(), "error", err)
		return
	}
	logger.FromContext(jobCtx).InfoContext(ctx, "job completed", "job", j.Name, "duration_ms", elapsed.Milliseconds())
}

// Shutdown waits for the start-up runs and any scheduled run in flight.
func (s *JobScheduler) Shutdown() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.wg.Wait()
}

// cronLogger adapts slog to cron's logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
