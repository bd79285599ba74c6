package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// PollRun polls the fetcher at a fixed interval until the run reaches one of
// the terminal statuses (Completed, Cancelled, Failed). The wait is bounded by
// cfg.Timeout and by ctx: a client disconnect cancels polling immediately, and
// a run stuck in a non-terminal state returns a timeout error instead of
// stalling the caller forever.
//
// The terminal run is returned whatever its status; interpreting Cancelled and
// Failed is the caller's job (see CompletedOutputText).
func PollRun(ctx context.Context, fetcher core.RunStatusFetcher, runID string, cfg PollConfig) (*model.Run, error) {
	if strings.TrimSpace(runID) == "" {
		return nil, apperrors.ValidationField("runId", "runId is required")
	}
	cfg = cfg.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		run, err := fetcher.GetRun(ctx, runID)
		if err != nil {
			if ctxErr := pollContextError(ctx, runID); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, err
		}
		if run.Status.Terminal() {
			return run, nil
		}

		select {
		case <-ctx.Done():
			return nil, pollContextError(ctx, runID)
		case <-ticker.C:
		}
	}
}

// pollContextError maps a done context to the error taxonomy: deadline means
// the run never went terminal in time, cancellation means the caller went
// away. Returns nil while the context is still live.
func pollContextError(ctx context.Context, runID string) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return apperrors.Timeout(fmt.Sprintf("run %s did not reach a terminal status before the poll deadline", runID))
	case errors.Is(ctx.Err(), context.Canceled):
		return apperrors.Wrap(ctx.Err(), apperrors.ErrCodeCanceled, fmt.Sprintf("polling run %s was canceled", runID))
	}
	return nil
}
