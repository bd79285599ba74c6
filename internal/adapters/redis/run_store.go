package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

const runKeyPrefix = "agentrun:"

// RunStore persists local-mode agent run state in Redis, one JSON value per
// run with a retention TTL. Status transitions are monotonic: once a run is
// terminal it is never rewritten.
type RunStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRunStore creates a Redis-backed run state store. Runs expire ttl after
// their last write.
func NewRunStore(client redis.UniversalClient, ttl time.Duration) *RunStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RunStore{client: client, ttl: ttl}
}

// Create stores a brand new run. A run ID collision is a conflict, not an
// overwrite.
func (s *RunStore) Create(ctx context.Context, run *model.Run) error {
	if run == nil || run.ID == "" {
		return apperrors.Validation("run ID is required")
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	ok, err := s.client.SetNX(ctx, runKeyPrefix+run.ID, data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis setnx run: %w", err)
	}
	if !ok {
		return apperrors.Conflict(fmt.Sprintf("run %s already exists", run.ID))
	}
	return nil
}

// Get retrieves a run by ID.
func (s *RunStore) Get(ctx context.Context, runID string) (*model.Run, error) {
	if runID == "" {
		return nil, apperrors.ValidationField("runId", "runId is required")
	}

	data, err := s.client.Get(ctx, runKeyPrefix+runID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFoundf("run %s not found", runID)
		}
		return nil, fmt.Errorf("redis get run: %w", err)
	}

	var run model.Run
	if unmarshalErr := json.Unmarshal([]byte(data), &run); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal run: %w", unmarshalErr)
	}
	return &run, nil
}

// GetRun makes RunStore usable directly as a run status fetcher in local
// dispatch mode.
func (s *RunStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	return s.Get(ctx, runID)
}

// MarkRunning transitions a run to Running. Terminal runs are left untouched.
func (s *RunStore) MarkRunning(ctx context.Context, runID string) error {
	return s.transition(ctx, runID, func(run *model.Run) error {
		run.Status = model.RunStatusRunning
		return nil
	})
}

// Complete marks a run successful and attaches its output.
func (s *RunStore) Complete(ctx context.Context, runID string, output json.RawMessage) error {
	return s.transition(ctx, runID, func(run *model.Run) error {
		run.Status = model.RunStatusCompleted
		run.Output = output
		run.Error = nil
		return nil
	})
}

// Fail marks a run terminally unsuccessful. Only Cancelled and Failed are
// accepted.
func (s *RunStore) Fail(ctx context.Context, runID string, status model.RunStatus, errMsg string) error {
	if status != model.RunStatusCancelled && status != model.RunStatusFailed {
		return apperrors.Validationf("status %q is not a failure status", status)
	}
	return s.transition(ctx, runID, func(run *model.Run) error {
		run.Status = status
		if errMsg != "" {
			run.Error = &errMsg
		}
		return nil
	})
}

// FailStale marks non-terminal runs with no progress for olderThan as failed
// and reports how many were swept. Runs that expire or reach a terminal state
// mid-sweep are skipped.
func (s *RunStore) FailStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	swept := 0

	iter := s.client.Scan(ctx, 0, runKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		runID := strings.TrimPrefix(iter.Val(), runKeyPrefix)
		run, err := s.Get(ctx, runID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return swept, err
		}
		if run.Status.Terminal() || run.UpdatedAt.After(cutoff) {
			continue
		}

		msg := fmt.Sprintf("run made no progress for %s", olderThan)
		if failErr := s.Fail(ctx, runID, model.RunStatusFailed, msg); failErr != nil {
			if apperrors.IsConflict(failErr) || apperrors.IsNotFound(failErr) {
				continue
			}
			return swept, failErr
		}
		swept++
	}
	return swept, iter.Err()
}

// transition applies mutate under the monotonic-terminal rule and rewrites
// the value, refreshing the retention TTL.
func (s *RunStore) transition(ctx context.Context, runID string, mutate func(*model.Run) error) error {
	run, err := s.Get(ctx, runID)
	if err != nil {
		return err
	}
	if run.Status.Terminal() {
		return apperrors.Conflict(fmt.Sprintf("run %s is already terminal (%s)", runID, run.Status))
	}

	if mutateErr := mutate(run); mutateErr != nil {
		return mutateErr
	}
	run.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	if setErr := s.client.Set(ctx, runKeyPrefix+runID, data, s.ttl).Err(); setErr != nil {
		return fmt.Errorf("redis set run: %w", setErr)
	}
	return nil
}
