// Package core defines the ports (hexagonal interfaces) between the service
// layer and the data/adapter layers. Services depend on these contracts, not
// on concrete implementations.
package core

import (
	"context"
	"encoding/json"
	"io"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
)

// RunDispatcher sends a named agent event to the orchestration layer and
// returns an opaque run ID. No retries happen at this layer; transport
// failures propagate to the caller.
type RunDispatcher interface {
	Send(ctx context.Context, event model.AgentEvent) (string, error)
}

// RunStatusFetcher retrieves current status/output for a run. Every call is a
// live request; nothing is cached.
type RunStatusFetcher interface {
	GetRun(ctx context.Context, runID string) (*model.Run, error)
}

// RunStateStore persists local run state (local dispatch mode). Transitions
// are monotonic: a run that reached a terminal status is never mutated again.
type RunStateStore interface {
	Create(ctx context.Context, run *model.Run) error
	Get(ctx context.Context, runID string) (*model.Run, error)
	MarkRunning(ctx context.Context, runID string) error
	Complete(ctx context.Context, runID string, output json.RawMessage) error
	Fail(ctx context.Context, runID string, status model.RunStatus, errMsg string) error
}

// HistoryRepository defines the interface for history record data operations.
type HistoryRepository interface {
	// SaveIfAbsent inserts the record unless one with the same record ID
	// already exists, and returns the stored row either way. The insert is
	// atomic (unique constraint + ON CONFLICT); first writer wins.
	SaveIfAbsent(ctx context.Context, req *model.SaveHistoryRequest) (*model.HistoryRecord, error)
	GetByRecordID(ctx context.Context, recordID string) (*model.HistoryRecord, error)
	ListByUserEmail(ctx context.Context, email string) ([]*model.HistoryRecord, error)
	ReplaceContent(ctx context.Context, req *model.ReplaceContentRequest) (*model.HistoryRecord, error)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// UpsertByEmail lazily creates the user on first authenticated request
	// and returns the stored row whether or not it already existed.
	UpsertByEmail(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AgentExecutor runs one agent workflow against the hosted LLM and returns
// its raw text output (possibly fenced JSON).
type AgentExecutor interface {
	Execute(ctx context.Context, event model.EventName, input string) (string, error)
}

// UploadRequest carries a file upload to the media CDN.
type UploadRequest struct {
	FileName string
	// Base64Data is the file content encoded as base64, per the CDN API.
	Base64Data string
}

// MediaUploader stores a file on the media CDN and returns its hosted URL.
type MediaUploader interface {
	Upload(ctx context.Context, req UploadRequest) (string, error)
}

// ResumeTextExtractor extracts plain text from an uploaded PDF for the
// resume analyzer prompt.
type ResumeTextExtractor interface {
	ExtractText(r io.ReaderAt, size int64) (string, error)
}
