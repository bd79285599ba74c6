package config

import (
	"fmt"
	"strings"
	"time"
)

// DispatchMode selects how agent run events are dispatched and polled.
type DispatchMode string

const (
	// DispatchModeLocal queues events in Redis and executes them with the
	// in-process worker service.
	DispatchModeLocal DispatchMode = "local"
	// DispatchModeRemote sends events to an external orchestration platform
	// over its REST API and polls run status from it.
	DispatchModeRemote DispatchMode = "remote"
)

// UnmarshalText implements encoding.TextUnmarshaler for DispatchMode.
func (d *DispatchMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "local", "remote":
		*d = DispatchMode(v)
		return nil
	default:
		return fmt.Errorf("invalid DispatchMode: %q (valid options: local, remote)", v)
	}
}

// LLMConfig contains hosted LLM API configuration for the agent worker.
type LLMConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"    envDefault:"gpt-4o-mini"`
	BaseURL string `env:"BASE_URL" envDefault:""`
}

// DispatcherConfig controls agent run dispatch and the shared poll loop.
type DispatcherConfig struct {
	// Mode selects local (Redis + in-process worker) or remote dispatch.
	Mode DispatchMode `env:"MODE" envDefault:"local"`

	// BaseURL is the orchestration platform endpoint (remote mode).
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8288"`

	// EventKey authenticates event sends to the platform (remote mode).
	EventKey string `env:"EVENT_KEY"`

	// PollInterval is the fixed delay between run status polls.
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"500ms"`

	// PollTimeout bounds the total wait for a run to reach a terminal state.
	PollTimeout time.Duration `env:"POLL_TIMEOUT" envDefault:"120s"`

	// QueueKey is the Redis list the local dispatcher pushes run IDs onto.
	QueueKey string `env:"QUEUE_KEY" envDefault:"agentruns:queue"`

	// RunTTL is how long local run state is retained in Redis after creation.
	RunTTL time.Duration `env:"RUN_TTL" envDefault:"1h"`

	// WorkerConcurrency is the number of worker goroutines consuming runs.
	WorkerConcurrency int `env:"WORKER_CONCURRENCY" envDefault:"2"`

	// ReapInterval is the delay between sweeps for stale local runs.
	ReapInterval time.Duration `env:"REAP_INTERVAL" envDefault:"1m"`

	// StaleRunAge is how long a non-terminal run may go without progress
	// before the reaper marks it failed.
	StaleRunAge time.Duration `env:"STALE_RUN_AGE" envDefault:"10m"`
}

// Sanitize applies guardrails to dispatcher configuration values.
func (d *DispatcherConfig) Sanitize() {
	if d.PollInterval <= 0 {
		d.PollInterval = 500 * time.Millisecond
	}
	if d.PollTimeout <= 0 {
		d.PollTimeout = 120 * time.Second
	}
	if d.RunTTL <= 0 {
		d.RunTTL = time.Hour
	}
	if d.WorkerConcurrency < 1 {
		d.WorkerConcurrency = 1
	}
	if strings.TrimSpace(d.QueueKey) == "" {
		d.QueueKey = "agentruns:queue"
	}
	if d.ReapInterval <= 0 {
		d.ReapInterval = time.Minute
	}
	if d.StaleRunAge <= 0 {
		d.StaleRunAge = 10 * time.Minute
	}
}

// AgentsConfig groups LLM and dispatcher configuration.
type AgentsConfig struct {
	LLM        LLMConfig        `envPrefix:"LLM_"`
	Dispatcher DispatcherConfig `envPrefix:"DISPATCH_"`
}

// Sanitize applies guardrails to agent configuration values.
func (a *AgentsConfig) Sanitize() {
	a.Dispatcher.Sanitize()
}

// MediaConfig contains media CDN upload configuration (resume PDF hosting).
type MediaConfig struct {
	UploadURL  string `env:"UPLOAD_URL"  envDefault:"https://upload.imagekit.io/api/v1/files/upload"`
	PrivateKey string `env:"PRIVATE_KEY"`
	PublicKey  string `env:"PUBLIC_KEY"`
	Folder     string `env:"FOLDER"      envDefault:"resumes"`
	// Enabled disables uploads entirely when false; history rows then carry no URL.
	Enabled bool `env:"ENABLED" envDefault:"false"`
}
