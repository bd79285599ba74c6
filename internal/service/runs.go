// Package service contains the orchestration layer: agent run flows, history
// and user operations, and authentication. Services depend on the ports in
// internal/core and never on concrete adapters.
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// PollConfig bounds the poll-until-terminal loop shared by every agent flow.
type PollConfig struct {
	// Interval is the fixed delay between status polls.
	Interval time.Duration
	// Timeout is the maximum total wait for a terminal status.
	Timeout time.Duration
}

func (c PollConfig) withDefaults() PollConfig {
	if c.Interval <= 0 {
		c.Interval = 500 * time.Millisecond
	}
	if c.Timeout <= 0 {
		c.Timeout = 120 * time.Second
	}
	return c
}

// RunClient bundles the dispatcher-facing ports every agent flow shares:
// sending events, polling for terminal status, and raw status reads.
type RunClient struct {
	Dispatcher core.RunDispatcher
	Fetcher    core.RunStatusFetcher
	Poll       PollConfig
}

// Dispatch sends an agent event and returns the opaque run ID. There are no
// retries at this layer; a lost response is indistinguishable from not-sent.
func (c RunClient) Dispatch(ctx context.Context, event model.AgentEvent) (string, error) {
	runID, err := c.Dispatcher.Send(ctx, event)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "dispatch %s", event.Name)
	}
	if runID == "" {
		return "", apperrors.Upstreamf("dispatcher returned no run ID for %s", event.Name)
	}
	return runID, nil
}

// Await polls the run until it reaches a terminal status or the poll deadline
// passes.
func (c RunClient) Await(ctx context.Context, runID string) (*model.Run, error) {
	return PollRun(ctx, c.Fetcher, runID, c.Poll)
}

// Status returns the current run state without waiting. Empty run IDs are a
// validation error so handlers can answer 400 instead of querying upstream.
func (c RunClient) Status(ctx context.Context, runID string) (*model.Run, error) {
	if strings.TrimSpace(runID) == "" {
		return nil, apperrors.ValidationField("runId", "runId is required")
	}
	return c.Fetcher.GetRun(ctx, runID)
}

// CompletedOutputText returns the raw agent text of a successfully completed
// run. Cancelled and Failed runs surface as distinct upstream errors rather
// than empty output.
func CompletedOutputText(run *model.Run) (string, error) {
	switch run.Status {
	case model.RunStatusCompleted:
	case model.RunStatusCancelled:
		return "", apperrors.Upstreamf("run %s was cancelled", run.ID)
	case model.RunStatusFailed:
		if run.Error != nil && *run.Error != "" {
			return "", apperrors.Upstreamf("run %s failed: %s", run.ID, *run.Error)
		}
		return "", apperrors.Upstreamf("run %s failed", run.ID)
	default:
		return "", apperrors.Upstreamf("run %s has not finished (status %s)", run.ID, run.Status)
	}
	return decodeOutputText(run.Output)
}

// decodeOutputText unwraps run output into the agent's raw text. Agents emit
// text, which run stores carry as a JSON string; structured output passes
// through verbatim.
func decodeOutputText(output json.RawMessage) (string, error) {
	if len(output) == 0 {
		return "", apperrors.Parse("run produced no output", nil)
	}
	var s string
	if err := json.Unmarshal(output, &s); err == nil {
		return s, nil
	}
	return string(output), nil
}
