// Package worker consumes queued agent tasks and executes them against the
// hosted LLM, recording progress in the run state store.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	redisq "github.com/APVS-BRO/ai-careers-hub/internal/adapters/redis"
	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
	obserrors "github.com/APVS-BRO/ai-careers-hub/internal/observability/errors"
	"github.com/APVS-BRO/ai-careers-hub/internal/observability/metrics"
	"github.com/APVS-BRO/ai-careers-hub/internal/observability/notify"
	"github.com/APVS-BRO/ai-careers-hub/internal/observability/statsd"
)

// TaskSource is the queue the runner drains. Satisfied by redis.Queue.
type TaskSource interface {
	Pop(ctx context.Context, timeout time.Duration) (*redisq.Task, error)
}

// RunnerOptions configures the worker runner.
type RunnerOptions struct {
	Queue    TaskSource
	Store    core.RunStateStore
	Executor core.AgentExecutor

	// Concurrency is the number of consuming goroutines; defaults to 1.
	Concurrency int
	// PopTimeout bounds each blocking queue read; defaults to 2s.
	PopTimeout time.Duration
	Logger     *slog.Logger

	// Metrics receives run lifecycle metrics when set.
	Metrics statsd.Sink
	// Failures receives a notification for every failed run when set.
	Failures notify.Sink
}

// Runner drains the dispatch queue with a pool of goroutines. Each task moves
// its run Pending -> Running -> terminal exactly once.
type Runner struct {
	queue       TaskSource
	store       core.RunStateStore
	executor    core.AgentExecutor
	concurrency int
	popTimeout  time.Duration
	logger      *slog.Logger
	metrics     statsd.Sink
	failures    notify.Sink
}

// NewRunner constructs a worker runner.
func NewRunner(opts RunnerOptions) *Runner {
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	popTimeout := opts.PopTimeout
	if popTimeout <= 0 {
		popTimeout = 2 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		queue:       opts.Queue,
		store:       opts.Store,
		executor:    opts.Executor,
		concurrency: concurrency,
		popTimeout:  popTimeout,
		logger:      logger.With("component", "worker"),
		metrics:     opts.Metrics,
		failures:    opts.Failures,
	}
}

// Run consumes tasks until ctx is canceled. It returns nil on clean shutdown.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.concurrency; i++ {
		workerID := i
		g.Go(func() error {
			return r.consume(ctx, workerID)
		})
	}
	return g.Wait()
}

func (r *Runner) consume(ctx context.Context, workerID int) error {
	logger := r.logger.With("worker_id", workerID)
	logger.InfoContext(ctx, "worker started")

	for {
		if ctx.Err() != nil {
			logger.InfoContext(ctx, "worker stopping")
			return nil
		}

		task, err := r.queue.Pop(ctx, r.popTimeout)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				logger.InfoContext(ctx, "worker stopping")
				return nil
			}
			logger.ErrorContext(ctx, "pop task failed", "err", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}
		if task == nil {
			continue
		}

		r.process(ctx, logger, task)
	}
}

// process executes one task. Failures are recorded on the run; they never
// stop the worker.
func (r *Runner) process(ctx context.Context, logger *slog.Logger, task *redisq.Task) {
	logger = logger.With("run_id", task.RunID, "event", string(task.Event.Name))
	started := time.Now()

	if err := r.store.MarkRunning(ctx, task.RunID); err != nil {
		// A terminal run means someone already settled it; skip quietly.
		if apperrors.IsConflict(err) {
			logger.WarnContext(ctx, "run already terminal, skipping")
			metrics.EmitRunLifecycle(r.metrics, metrics.RunMetric{
				Event:  string(task.Event.Name),
				Result: metrics.ResultSkipped,
			})
			return
		}
		logger.ErrorContext(ctx, "mark running failed", "err", err)
		return
	}

	input, err := agentInput(task.Event)
	if err != nil {
		r.fail(ctx, logger, task, started, err)
		return
	}

	output, err := r.executor.Execute(ctx, task.Event.Name, input)
	if err != nil {
		r.fail(ctx, logger, task, started, err)
		return
	}

	// Runs carry the raw agent text as a JSON string; request flows unwrap it.
	encoded, err := json.Marshal(output)
	if err != nil {
		r.fail(ctx, logger, task, started, fmt.Errorf("encode output: %w", err))
		return
	}
	if completeErr := r.store.Complete(ctx, task.RunID, encoded); completeErr != nil {
		logger.ErrorContext(ctx, "complete run failed", "err", completeErr)
		return
	}
	duration := time.Since(started)
	metrics.EmitRunLifecycle(r.metrics, metrics.RunMetric{
		Event:    string(task.Event.Name),
		Result:   metrics.ResultSuccess,
		Duration: duration,
	})
	logger.InfoContext(ctx, "run completed", "duration_ms", duration.Milliseconds())
}

func (r *Runner) fail(ctx context.Context, logger *slog.Logger, task *redisq.Task, started time.Time, cause error) {
	logger.ErrorContext(ctx, "run failed", "err", cause)
	if err := r.store.Fail(ctx, task.RunID, model.RunStatusFailed, cause.Error()); err != nil {
		logger.ErrorContext(ctx, "record run failure failed", "err", err)
	}
	metrics.EmitRunLifecycle(r.metrics, metrics.RunMetric{
		Event:    string(task.Event.Name),
		Result:   metrics.ResultError,
		Duration: time.Since(started),
		Err:      cause,
	})
	r.notifyFailure(ctx, logger, task, cause)
}

func (r *Runner) notifyFailure(ctx context.Context, logger *slog.Logger, task *redisq.Task, cause error) {
	if r.failures == nil {
		return
	}
	// Shutdown must not swallow the notification for a run that already failed.
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	err := r.failures.SendRunFailure(notifyCtx, notify.RunFailurePayload{
		RunID:      task.RunID,
		Event:      string(task.Event.Name),
		Error:      cause.Error(),
		ErrorClass: obserrors.Classify(cause),
		Severity:   notify.SeverityCritical,
		OccurredAt: time.Now(),
	})
	if err != nil {
		logger.WarnContext(ctx, "send failure notification failed", "err", err)
	}
}

// agentInput picks the prompt input out of an event payload.
func agentInput(event model.AgentEvent) (string, error) {
	switch event.Name {
	case model.EventCareerChat:
		var data model.ChatEventData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return "", fmt.Errorf("decode chat payload: %w", err)
		}
		return data.UserInput, nil
	case model.EventResumeAnalysis:
		var data model.ResumeEventData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return "", fmt.Errorf("decode resume payload: %w", err)
		}
		return data.PDFText, nil
	case model.EventRoadmapGenerator:
		var data model.RoadmapEventData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return "", fmt.Errorf("decode roadmap payload: %w", err)
		}
		return data.UserInput, nil
	default:
		return "", fmt.Errorf("no agent registered for event %q", event.Name)
	}
}
