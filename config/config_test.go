package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestParseServices(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    map[ServiceMode]bool
		expectError bool
	}{
		{
			name:  "single service - http",
			input: "http",
			expected: map[ServiceMode]bool{
				ServiceModeHTTP: true,
			},
		},
		{
			name:  "single service - worker",
			input: "worker",
			expected: map[ServiceMode]bool{
				ServiceModeWorker: true,
			},
		},
		{
			name:  "both services",
			input: "http,worker",
			expected: map[ServiceMode]bool{
				ServiceModeHTTP:   true,
				ServiceModeWorker: true,
			},
		},
		{
			name:  "services with spaces",
			input: " http , worker ",
			expected: map[ServiceMode]bool{
				ServiceModeHTTP:   true,
				ServiceModeWorker: true,
			},
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "invalid service name",
			input:       "http,scheduler",
			expectError: true,
		},
		{
			name:        "only commas",
			input:       ",,,",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServices(tt.input)
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for input %q, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseServices(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Services != "http" {
		t.Errorf("default Services = %q, want %q", cfg.Services, "http")
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("default DB port = %d, want 5432", cfg.Postgres.Port)
	}
	if cfg.Agents.Dispatcher.PollInterval != 500*time.Millisecond {
		t.Errorf("default poll interval = %v, want 500ms", cfg.Agents.Dispatcher.PollInterval)
	}
	if cfg.Agents.Dispatcher.Mode != DispatchModeLocal {
		t.Errorf("default dispatch mode = %q, want local", cfg.Agents.Dispatcher.Mode)
	}
	if cfg.Observability.Statsd.Enabled {
		t.Error("statsd should be disabled by default")
	}
	if cfg.Observability.Slack.Username != "careershub" {
		t.Errorf("default slack username = %q, want careershub", cfg.Observability.Slack.Username)
	}
}

func TestDispatcherConfig_Sanitize(t *testing.T) {
	d := DispatcherConfig{
		PollInterval:      -1,
		PollTimeout:       0,
		RunTTL:            0,
		WorkerConcurrency: 0,
		QueueKey:          "  ",
		ReapInterval:      0,
		StaleRunAge:       -1,
	}
	d.Sanitize()

	if d.PollInterval != 500*time.Millisecond {
		t.Errorf("PollInterval = %v, want 500ms", d.PollInterval)
	}
	if d.PollTimeout != 120*time.Second {
		t.Errorf("PollTimeout = %v, want 120s", d.PollTimeout)
	}
	if d.RunTTL != time.Hour {
		t.Errorf("RunTTL = %v, want 1h", d.RunTTL)
	}
	if d.WorkerConcurrency != 1 {
		t.Errorf("WorkerConcurrency = %d, want 1", d.WorkerConcurrency)
	}
	if d.QueueKey != "agentruns:queue" {
		t.Errorf("QueueKey = %q, want agentruns:queue", d.QueueKey)
	}
	if d.ReapInterval != time.Minute {
		t.Errorf("ReapInterval = %v, want 1m", d.ReapInterval)
	}
	if d.StaleRunAge != 10*time.Minute {
		t.Errorf("StaleRunAge = %v, want 10m", d.StaleRunAge)
	}
}

func TestDispatchMode_UnmarshalText(t *testing.T) {
	var m DispatchMode
	if err := m.UnmarshalText([]byte("REMOTE")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != DispatchModeRemote {
		t.Errorf("mode = %q, want remote", m)
	}
	if err := m.UnmarshalText([]byte("inline")); err == nil {
		t.Error("expected error for invalid mode")
	}
}
