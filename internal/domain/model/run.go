// Package model defines the core data types used throughout the careers hub service.
package model

import (
	"encoding/json"
	"strings"
	"time"
)

// RunStatus represents the current status of an agent run as reported by the
// dispatcher. The terminal set is fixed: once a run reaches Completed,
// Cancelled, or Failed it never changes again.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type RunStatus string

const (
	// RunStatusPending indicates a run is waiting to be picked up.
	RunStatusPending RunStatus = "Pending"
	// RunStatusQueued indicates a run is queued by the orchestration platform.
	RunStatusQueued RunStatus = "Queued"
	// RunStatusRunning indicates the agent is currently executing.
	RunStatusRunning RunStatus = "Running"
	// RunStatusCompleted indicates the agent finished successfully.
	RunStatusCompleted RunStatus = "Completed"
	// RunStatusCancelled indicates the run was cancelled upstream.
	RunStatusCancelled RunStatus = "Cancelled"
	// RunStatusFailed indicates the agent run failed.
	RunStatusFailed RunStatus = "Failed"
)

// Valid returns true if the RunStatus is one of the known states.
func (s RunStatus) Valid() bool {
	switch s {
	case RunStatusPending, RunStatusQueued, RunStatusRunning,
		RunStatusCompleted, RunStatusCancelled, RunStatusFailed:
		return true
	}
	return false
}

// Terminal returns true once no further status change can occur.
func (s RunStatus) Terminal() bool {
	return s == RunStatusCompleted || s == RunStatusCancelled || s == RunStatusFailed
}

// UnmarshalText implements encoding.TextUnmarshaler so external platforms may
// report statuses in any casing.
func (s *RunStatus) UnmarshalText(text []byte) error {
	v := strings.TrimSpace(string(text))
	for _, known := range []RunStatus{
		RunStatusPending, RunStatusQueued, RunStatusRunning,
		RunStatusCompleted, RunStatusCancelled, RunStatusFailed,
	} {
		if strings.EqualFold(v, string(known)) {
			*s = known
			return nil
		}
	}
	// Unknown statuses are preserved verbatim; the status set is controlled
	// externally and polling treats anything non-terminal as "keep waiting".
	*s = RunStatus(v)
	return nil
}

// TerminalRunStatuses is the full terminal set every poll loop must honor.
func TerminalRunStatuses() []RunStatus {
	return []RunStatus{RunStatusCompleted, RunStatusCancelled, RunStatusFailed}
}

// Run represents one invocation of an agent workflow, identified by an opaque
// run ID issued by the dispatcher. Output is populated once the run completes.
type Run struct {
	ID        string          `json:"id"`
	Event     EventName       `json:"event"`
	Status    RunStatus       `json:"status"`
	Output    json.RawMessage `json:"output,omitempty"`
	Error     *string         `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
