package slack

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/APVS-BRO/ai-careers-hub/internal/observability/notify"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error when webhook url missing")
	}
}

func TestFormatMessageIncludesFields(t *testing.T) {
	client, err := NewClient(Config{
		WebhookURL: "https://hooks.slack.com/services/test",
		Channel:    "#agent-alerts",
		Username:   "bot",
		Timeout:    time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := client.formatMessage(notify.RunFailurePayload{
		RunID:      "run-123",
		Event:      "app/career.chat",
		Error:      "model unavailable",
		ErrorClass: "upstream_run",
		Metadata:   map[string]string{"worker_id": "2"},
	})

	if msg["username"] != "bot" {
		t.Fatalf("expected username to be preserved, got %v", msg["username"])
	}
	if msg["channel"] != "#agent-alerts" {
		t.Fatalf("expected channel to be set, got %v", msg["channel"])
	}

	text, ok := msg["text"].(string)
	if !ok {
		t.Fatalf("expected text field")
	}
	if !containsAll(
		text,
		[]string{"Agent run failure", "run-123", "app/career.chat", "model unavailable", "upstream_run", "worker_id: 2", "critical"},
	) {
		t.Fatalf("message text missing fields: %s", text)
	}
}

func TestFormatMessageEscapesErrorText(t *testing.T) {
	client, err := NewClient(Config{
		WebhookURL: "https://hooks.slack.com/services/test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := client.formatMessage(notify.RunFailurePayload{
		RunID: "run-1",
		Error: "bad response <html> & friends",
	})

	text, ok := msg["text"].(string)
	if !ok {
		t.Fatalf("expected text field")
	}

	if !strings.Contains(text, "bad response &lt;html&gt; &amp; friends") {
		t.Fatalf("expected escaped error text, got: %s", text)
	}
}

func TestFormatMessageDefaultUsername(t *testing.T) {
	client, err := NewClient(Config{WebhookURL: "https://hooks.slack.com/services/test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := client.formatMessage(notify.RunFailurePayload{RunID: "run-1"})
	if msg["username"] != "careershub" {
		t.Fatalf("expected default username, got %v", msg["username"])
	}
	if _, hasChannel := msg["channel"]; hasChannel {
		t.Fatalf("expected no channel override, got %v", msg["channel"])
	}
}

func TestSendRunFailureRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewClient(Config{
		WebhookURL: srv.URL,
		RetryLimit: 2,
		Client:     srv.Client(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sendErr := client.SendRunFailure(t.Context(), notify.RunFailurePayload{RunID: "run-1"}); sendErr != nil {
		t.Fatalf("expected retry to succeed, got %v", sendErr)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 webhook calls, got %d", got)
	}
}

func TestSendRunFailureReturnsWebhookError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	client, err := NewClient(Config{
		WebhookURL: srv.URL,
		RetryLimit: 0,
		Client:     srv.Client(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sendErr := client.SendRunFailure(t.Context(), notify.RunFailurePayload{RunID: "run-1"})
	if sendErr == nil || !strings.Contains(sendErr.Error(), "invalid_payload") {
		t.Fatalf("expected webhook error with body, got %v", sendErr)
	}
}

func containsAll(text string, substrs []string) bool {
	for _, s := range substrs {
		if !strings.Contains(text, s) {
			return false
		}
	}
	return true
}
