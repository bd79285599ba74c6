// Package localdispatch implements agent run dispatch without an external
// orchestration platform: each Send records a pending run in the run state
// store and queues a task for the in-process worker.
package localdispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	redisq "github.com/APVS-BRO/ai-careers-hub/internal/adapters/redis"
	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// TaskQueue is the queue the dispatcher feeds. Satisfied by redis.Queue.
type TaskQueue interface {
	Push(ctx context.Context, task redisq.Task) error
}

// Dispatcher implements core.RunDispatcher for local mode.
type Dispatcher struct {
	store core.RunStateStore
	queue TaskQueue
}

// NewDispatcher constructs a local dispatcher.
func NewDispatcher(store core.RunStateStore, queue TaskQueue) *Dispatcher {
	return &Dispatcher{store: store, queue: queue}
}

// Send records a pending run and queues it for the worker. When queueing
// fails after the run was recorded, the run is failed in place so pollers see
// a terminal status instead of waiting out their deadline.
func (d *Dispatcher) Send(ctx context.Context, event model.AgentEvent) (string, error) {
	if err := event.Validate(); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid agent event")
	}

	now := time.Now().UTC()
	run := &model.Run{
		ID:        uuid.NewString(),
		Event:     event.Name,
		Status:    model.RunStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := d.store.Create(ctx, run); err != nil {
		return "", fmt.Errorf("create run state: %w", err)
	}

	if err := d.queue.Push(ctx, redisq.Task{RunID: run.ID, Event: event}); err != nil {
		failMsg := fmt.Sprintf("queue task: %v", err)
		if failErr := d.store.Fail(ctx, run.ID, model.RunStatusFailed, failMsg); failErr != nil {
			return "", fmt.Errorf("queue task: %w (and failing run: %v)", err, failErr)
		}
		return "", fmt.Errorf("queue task: %w", err)
	}
	return run.ID, nil
}
