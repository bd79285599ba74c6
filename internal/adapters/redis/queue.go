package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
)

// Task is one queued unit of agent work: the run to report progress on plus
// the event that triggered it.
type Task struct {
	RunID string           `json:"run_id"`
	Event model.AgentEvent `json:"event"`
}

// Queue is a Redis list used as the local dispatch queue. The dispatcher
// pushes tasks, worker goroutines pop them.
type Queue struct {
	client redis.UniversalClient
	key    string
}

// NewQueue creates a queue over the given Redis list key.
func NewQueue(client redis.UniversalClient, key string) *Queue {
	if key == "" {
		key = "agentruns:queue"
	}
	return &Queue{client: client, key: key}
}

// Push enqueues a task.
func (q *Queue) Push(ctx context.Context, task Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	if pushErr := q.client.LPush(ctx, q.key, data).Err(); pushErr != nil {
		return fmt.Errorf("redis lpush task: %w", pushErr)
	}
	return nil
}

// Pop blocks up to timeout for the next task. Returns (nil, nil) when the
// wait elapsed with nothing queued, so consumers can loop on their context.
func (q *Queue) Pop(ctx context.Context, timeout time.Duration) (*Task, error) {
	if timeout <= 0 {
		timeout = time.Second
	}

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis brpop task: %w", err)
	}
	// BRPOP returns [key, value].
	if len(res) != 2 {
		return nil, fmt.Errorf("redis brpop returned %d elements", len(res))
	}

	var task Task
	if unmarshalErr := json.Unmarshal([]byte(res[1]), &task); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal task: %w", unmarshalErr)
	}
	return &task, nil
}

// Len reports the number of queued tasks.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
