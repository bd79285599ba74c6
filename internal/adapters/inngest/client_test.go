package inngest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		BaseURL:    server.URL,
		EventKey:   "test-key",
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestClient_Send(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/e/test-key", r.URL.Path)

		var body struct {
			Name string          `json:"name"`
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, string(model.EventCareerChat), body.Name)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ids":["evt-001"],"status":200}`))
	})

	event, err := model.NewAgentEvent(model.EventCareerChat, model.ChatEventData{UserInput: "hi"})
	require.NoError(t, err)

	runID, err := client.Send(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, "evt-001", runID)
}

func TestClient_Send_PlatformErrorIsUpstream(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	event, err := model.NewAgentEvent(model.EventCareerChat, model.ChatEventData{UserInput: "hi"})
	require.NoError(t, err)

	_, err = client.Send(context.Background(), event)
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestClient_GetRun_TerminalStatuses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		platform string
		want     model.RunStatus
	}{
		{"Completed", model.RunStatusCompleted},
		{"Cancelled", model.RunStatusCancelled},
		{"Failed", model.RunStatusFailed},
		// Casing is platform-controlled; accept any.
		{"completed", model.RunStatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.platform, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/events/evt-001/runs", r.URL.Path)
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"data":[{"run_id":"r1","status":"` + tc.platform + `","output":"done"}]}`))
			})

			run, err := client.GetRun(context.Background(), "evt-001")
			require.NoError(t, err)
			assert.Equal(t, tc.want, run.Status)
			assert.JSONEq(t, `"done"`, string(run.Output))
		})
	}
}

func TestClient_GetRun_NoRunsYetIsPending(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	run, err := client.GetRun(context.Background(), "evt-002")
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusPending, run.Status)
}

func TestClient_GetRun_MissingEventIsNotFound(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetRun(context.Background(), "evt-missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestClient_GetRun_RequiresRunID(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.GetRun(context.Background(), " ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{EventKey: "k"})
	require.Error(t, err)
	_, err = NewClient(Config{BaseURL: "http://localhost:8288"})
	require.Error(t, err)
}
