package service

import (
	"context"
	"log/slog"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// ChatServiceOptions groups dependencies for ChatService.
type ChatServiceOptions struct {
	Runs   RunClient
	Logger *slog.Logger
}

// ChatService runs the career chat advisor flow: dispatch the chat event,
// wait for the run, return the advisor's answer. Chat transcripts are saved
// by the client through the history API, not here.
type ChatService struct {
	runs   RunClient
	logger *slog.Logger
}

// NewChatService constructs a new ChatService.
func NewChatService(opts ChatServiceOptions) *ChatService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{runs: opts.Runs, logger: logger.With("service", "chat")}
}

// ChatResult carries the advisor's answer plus the run that produced it.
type ChatResult struct {
	RunID  string `json:"runId"`
	Answer string `json:"answer"`
}

// Ask dispatches one chat turn to the career advisor agent and waits for the
// answer.
func (s *ChatService) Ask(ctx context.Context, userInput string) (*ChatResult, error) {
	data := model.ChatEventData{UserInput: userInput}
	if err := data.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid chat input")
	}

	event, err := model.NewAgentEvent(model.EventCareerChat, data)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "build chat event")
	}

	runID, err := s.runs.Dispatch(ctx, event)
	if err != nil {
		return nil, err
	}
	run, err := s.runs.Await(ctx, runID)
	if err != nil {
		return nil, err
	}

	answer, err := CompletedOutputText(run)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "chat run completed", "run_id", runID)
	return &ChatResult{RunID: runID, Answer: answer}, nil
}

// RunStatus returns the raw state of a previously dispatched chat run.
func (s *ChatService) RunStatus(ctx context.Context, runID string) (*model.Run, error) {
	return s.runs.Status(ctx, runID)
}
