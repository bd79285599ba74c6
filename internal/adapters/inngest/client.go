// Package inngest is the remote dispatch adapter: it speaks the event-key
// REST surface of an Inngest-style orchestration platform, sending events and
// reading run status over HTTP.
package inngest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// Config holds connection settings for the orchestration platform.
type Config struct {
	// BaseURL is the platform endpoint, e.g. http://localhost:8288.
	BaseURL string
	// EventKey authenticates event sends and run reads.
	EventKey string
	// HTTPClient is optional; defaults to a 30s-timeout client.
	HTTPClient *http.Client
}

// Client implements core.RunDispatcher and core.RunStatusFetcher against the
// platform's REST API.
type Client struct {
	baseURL  string
	eventKey string
	http     *http.Client
}

// NewClient constructs a remote dispatch client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("dispatcher base URL is required")
	}
	if cfg.EventKey == "" {
		return nil, errors.New("dispatcher event key is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		eventKey: cfg.EventKey,
		http:     httpClient,
	}, nil
}

type sendEventBody struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

type sendEventResponse struct {
	IDs []string `json:"ids"`
}

// Send posts the event to POST /e/{eventKey} and returns the platform's event
// ID, which doubles as the run handle for status reads.
func (c *Client) Send(ctx context.Context, event model.AgentEvent) (string, error) {
	if err := event.Validate(); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid agent event")
	}

	body, err := json.Marshal(sendEventBody{Name: string(event.Name), Data: event.Data})
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	url := c.baseURL + "/e/" + c.eventKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.Upstreamf("send event: platform responded %d", resp.StatusCode)
	}

	var parsed sendEventResponse
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); decodeErr != nil {
		return "", fmt.Errorf("decode send response: %w", decodeErr)
	}
	if len(parsed.IDs) == 0 {
		return "", apperrors.Upstream("send event: platform returned no event ID")
	}
	return parsed.IDs[0], nil
}

type runsResponse struct {
	Data []struct {
		RunID  string          `json:"run_id"`
		Status model.RunStatus `json:"status"`
		Output json.RawMessage `json:"output"`
		RunAt  time.Time       `json:"run_started_at"`
		EndAt  *time.Time      `json:"ended_at"`
	} `json:"data"`
}

// GetRun reads GET /v1/events/{id}/runs and maps the first run to the domain
// shape. An event with no runs yet reports as Pending rather than an error.
func (c *Client) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	if strings.TrimSpace(runID) == "" {
		return nil, apperrors.ValidationField("runId", "runId is required")
	}

	url := c.baseURL + "/v1/events/" + runID + "/runs"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.eventKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get run status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NotFoundf("run %s not found", runID)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.Upstreamf("get run status: platform responded %d", resp.StatusCode)
	}

	var parsed runsResponse
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(&parsed); decodeErr != nil {
		return nil, fmt.Errorf("decode status response: %w", decodeErr)
	}

	run := &model.Run{ID: runID, Status: model.RunStatusPending}
	if len(parsed.Data) == 0 {
		return run, nil
	}

	first := parsed.Data[0]
	run.Status = first.Status
	run.Output = first.Output
	run.CreatedAt = first.RunAt
	if first.EndAt != nil {
		run.UpdatedAt = *first.EndAt
	}
	return run, nil
}
