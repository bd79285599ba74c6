package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/APVS-BRO/ai-careers-hub/config"
	"github.com/APVS-BRO/ai-careers-hub/internal/adapters/inngest"
	"github.com/APVS-BRO/ai-careers-hub/internal/adapters/localdispatch"
	"github.com/APVS-BRO/ai-careers-hub/internal/adapters/openaiagent"
	"github.com/APVS-BRO/ai-careers-hub/internal/adapters/reaper"
	redisadapter "github.com/APVS-BRO/ai-careers-hub/internal/adapters/redis"
	"github.com/APVS-BRO/ai-careers-hub/internal/adapters/worker"
	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	"github.com/APVS-BRO/ai-careers-hub/internal/observability/notify"
	"github.com/APVS-BRO/ai-careers-hub/internal/observability/statsd"
	"github.com/APVS-BRO/ai-careers-hub/internal/service"
)

// DispatchConfig contains configuration for the agent dispatch stack.
type DispatchConfig struct {
	Agents      config.AgentsConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger

	// Metrics and Failures are optional worker sinks.
	Metrics  statsd.Sink
	Failures notify.Sink
}

// DispatchStack bundles the wired dispatch ports plus the local-mode pieces
// the worker service needs. Store, RunStore and Queue are nil in remote mode.
type DispatchStack struct {
	Runs     service.RunClient
	Store    core.RunStateStore
	RunStore *redisadapter.RunStore
	Queue    *redisadapter.Queue
}

// BuildDispatchStack wires run dispatch according to the configured mode:
// local keeps run state and a task queue in Redis for the in-process worker,
// remote talks to the orchestration platform's REST API.
func BuildDispatchStack(cfg DispatchConfig) (*DispatchStack, error) {
	poll := service.PollConfig{
		Interval: cfg.Agents.Dispatcher.PollInterval,
		Timeout:  cfg.Agents.Dispatcher.PollTimeout,
	}

	switch cfg.Agents.Dispatcher.Mode {
	case config.DispatchModeRemote:
		client, err := inngest.NewClient(inngest.Config{
			BaseURL:  cfg.Agents.Dispatcher.BaseURL,
			EventKey: cfg.Agents.Dispatcher.EventKey,
		})
		if err != nil {
			return nil, fmt.Errorf("build remote dispatcher: %w", err)
		}
		return &DispatchStack{
			Runs: service.RunClient{Dispatcher: client, Fetcher: client, Poll: poll},
		}, nil

	case config.DispatchModeLocal:
		if cfg.RedisClient == nil {
			return nil, fmt.Errorf("local dispatch requires a redis client")
		}
		store := redisadapter.NewRunStore(cfg.RedisClient, cfg.Agents.Dispatcher.RunTTL)
		queue := redisadapter.NewQueue(cfg.RedisClient, cfg.Agents.Dispatcher.QueueKey)
		dispatcher := localdispatch.NewDispatcher(store, queue)
		return &DispatchStack{
			Runs:     service.RunClient{Dispatcher: dispatcher, Fetcher: store, Poll: poll},
			Store:    store,
			RunStore: store,
			Queue:    queue,
		}, nil

	default:
		return nil, fmt.Errorf("unknown dispatch mode %q", cfg.Agents.Dispatcher.Mode)
	}
}

// BuildWorker creates the worker runner that drains the local dispatch queue.
// Requires a local-mode dispatch stack and a configured LLM API key.
func BuildWorker(cfg DispatchConfig, stack *DispatchStack) (*worker.Runner, error) {
	if stack == nil || stack.Store == nil || stack.Queue == nil {
		return nil, fmt.Errorf("worker requires local dispatch mode")
	}

	executor, err := openaiagent.NewExecutor(openaiagent.Config{
		APIKey:  cfg.Agents.LLM.APIKey,
		Model:   cfg.Agents.LLM.Model,
		BaseURL: cfg.Agents.LLM.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("build agent executor: %w", err)
	}

	return worker.NewRunner(worker.RunnerOptions{
		Queue:       stack.Queue,
		Store:       stack.Store,
		Executor:    executor,
		Concurrency: cfg.Agents.Dispatcher.WorkerConcurrency,
		Logger:      cfg.Logger,
		Metrics:     cfg.Metrics,
		Failures:    cfg.Failures,
	}), nil
}

// BuildReaper creates the stale run sweeper for local dispatch mode.
func BuildReaper(cfg DispatchConfig, stack *DispatchStack) (*reaper.Runner, error) {
	if stack == nil || stack.RunStore == nil {
		return nil, fmt.Errorf("reaper requires local dispatch mode")
	}
	return reaper.NewRunner(reaper.RunnerOptions{
		Store:    stack.RunStore,
		Interval: cfg.Agents.Dispatcher.ReapInterval,
		StaleAge: cfg.Agents.Dispatcher.StaleRunAge,
		Logger:   cfg.Logger,
		Metrics:  cfg.Metrics,
	})
}
