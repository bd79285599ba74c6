package reaper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSweeper struct {
	swept  atomic.Int32
	calls  atomic.Int32
	err    error
	notify chan struct{}
}

func (s *stubSweeper) FailStale(_ context.Context, _ time.Duration) (int, error) {
	s.calls.Add(1)
	select {
	case s.notify <- struct{}{}:
	default:
	}
	if s.err != nil {
		return 0, s.err
	}
	return int(s.swept.Load()), nil
}

func TestNewRunner_RequiresStore(t *testing.T) {
	t.Parallel()
	_, err := NewRunner(RunnerOptions{})
	require.Error(t, err)
}

func TestRunner_SweepsUntilCanceled(t *testing.T) {
	t.Parallel()

	sweeper := &stubSweeper{notify: make(chan struct{}, 1)}
	sweeper.swept.Store(2)

	runner, err := NewRunner(RunnerOptions{
		Store:    sweeper,
		Interval: 5 * time.Millisecond,
		StaleAge: time.Minute,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	select {
	case <-sweeper.notify:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a sweep")
	}

	cancel()
	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, sweeper.calls.Load(), int32(1))
}

func TestRunner_SweepErrorDoesNotStopLoop(t *testing.T) {
	t.Parallel()

	sweeper := &stubSweeper{err: errors.New("redis gone"), notify: make(chan struct{}, 1)}

	runner, err := NewRunner(RunnerOptions{
		Store:    sweeper,
		Interval: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	<-sweeper.notify
	<-sweeper.notify

	cancel()
	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, sweeper.calls.Load(), int32(2))
}
