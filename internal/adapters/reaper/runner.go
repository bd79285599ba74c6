// Package reaper fails local agent runs that stopped making progress, so a
// crashed worker never leaves a run stuck in a non-terminal state until its
// retention TTL expires.
package reaper

import (
	"context"
	"errors"
	"log/slog"
	"time"

	obserrors "github.com/APVS-BRO/ai-careers-hub/internal/observability/errors"
	"github.com/APVS-BRO/ai-careers-hub/internal/observability/metrics"
	"github.com/APVS-BRO/ai-careers-hub/internal/observability/statsd"
)

// RunSweeper fails runs with no progress for olderThan. Satisfied by
// redis.RunStore.
type RunSweeper interface {
	FailStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Store RunSweeper

	// Interval is the delay between sweeps; defaults to 1m.
	Interval time.Duration
	// StaleAge is the no-progress threshold; defaults to 10m.
	StaleAge time.Duration

	Logger  *slog.Logger
	Metrics statsd.Sink
}

// Runner periodically sweeps the run store for stale runs.
type Runner struct {
	store    RunSweeper
	interval time.Duration
	staleAge time.Duration
	logger   *slog.Logger
	metrics  statsd.Sink
}

// NewRunner creates a reaper runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Store == nil {
		return nil, errors.New("run store is required")
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	staleAge := opts.StaleAge
	if staleAge <= 0 {
		staleAge = 10 * time.Minute
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		store:    opts.Store,
		interval: interval,
		staleAge: staleAge,
		logger:   logger.With("component", "reaper"),
		metrics:  opts.Metrics,
	}, nil
}

// Run sweeps at the configured interval until ctx is canceled. Sweep errors
// are logged and never stop the loop.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "reaper started",
		"interval", r.interval, "stale_age", r.staleAge)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "reaper stopping")
			return nil
		case <-ticker.C:
			start := time.Now()
			swept, err := r.store.FailStale(ctx, r.staleAge)
			r.emitSweepMetrics(swept, time.Since(start), err)

			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				r.logger.ErrorContext(ctx, "sweep failed", "err", err)
			} else if swept > 0 {
				r.logger.InfoContext(ctx, "swept stale runs", "count", swept)
			}
		}
	}
}

func (r *Runner) emitSweepMetrics(swept int, elapsed time.Duration, err error) {
	if r.metrics == nil {
		return
	}

	result := metrics.ResultSuccess
	switch {
	case err != nil:
		result = metrics.ResultError
	case swept == 0:
		result = metrics.ResultNoop
	}

	tags := map[string]string{"result": result}
	if err != nil {
		if class := obserrors.Classify(err); class != "" {
			tags["error_class"] = class
		}
	}

	r.metrics.Count("reaper.sweep", 1, tags)
	if swept > 0 {
		r.metrics.Count("reaper.runs_failed", int64(swept), tags)
	}
	if elapsed > 0 {
		r.metrics.Timing("reaper.sweep_duration", elapsed, metrics.CloneTags(tags))
	}
}
