package service

import (
	"context"
	"log/slog"

	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/agent"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// RoadmapServiceOptions groups dependencies for RoadmapService.
type RoadmapServiceOptions struct {
	Runs    RunClient
	History core.HistoryRepository
	Logger  *slog.Logger
}

// RoadmapService runs the learning roadmap flow: dispatch the generator
// agent, wait for the run, parse the fenced JSON graph, and persist it
// idempotently under the client's record ID.
type RoadmapService struct {
	runs    RunClient
	history core.HistoryRepository
	logger  *slog.Logger
}

// NewRoadmapService constructs a new RoadmapService.
func NewRoadmapService(opts RoadmapServiceOptions) *RoadmapService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &RoadmapService{runs: opts.Runs, history: opts.History, logger: logger.With("service", "roadmap")}
}

// GenerateRoadmapInput carries one roadmap generation request.
type GenerateRoadmapInput struct {
	RecordID  string
	UserInput string
	UserEmail *string
}

// RoadmapResult is the outcome of a roadmap run: the validated graph plus the
// history row it was persisted as.
type RoadmapResult struct {
	RunID   string               `json:"runId"`
	Roadmap *model.Roadmap       `json:"roadmap"`
	Record  *model.HistoryRecord `json:"record"`
}

// Generate runs the full roadmap generation flow for one topic.
func (s *RoadmapService) Generate(ctx context.Context, in GenerateRoadmapInput) (*RoadmapResult, error) {
	data := model.RoadmapEventData{RecordID: in.RecordID, UserInput: in.UserInput}
	if in.UserEmail != nil {
		data.UserEmail = *in.UserEmail
	}
	if err := data.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid roadmap input")
	}

	event, err := model.NewAgentEvent(model.EventRoadmapGenerator, data)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "build roadmap event")
	}

	runID, err := s.runs.Dispatch(ctx, event)
	if err != nil {
		return nil, err
	}
	run, err := s.runs.Await(ctx, runID)
	if err != nil {
		return nil, err
	}
	raw, err := CompletedOutputText(run)
	if err != nil {
		return nil, err
	}

	content, err := agent.Extract(raw)
	if err != nil {
		return nil, err
	}
	decoded, err := model.DecodeContent(model.AgentTypeRoadmapGenerator, content)
	if err != nil {
		return nil, apperrors.Parse("agent returned a malformed roadmap", err)
	}
	roadmap, ok := decoded.(*model.Roadmap)
	if !ok {
		return nil, apperrors.Parse("agent returned a malformed roadmap", nil)
	}

	record, err := s.history.SaveIfAbsent(ctx, &model.SaveHistoryRequest{
		RecordID:    in.RecordID,
		Content:     content,
		AIAgentType: string(model.AgentTypeRoadmapGenerator),
		UserEmail:   in.UserEmail,
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "roadmap persisted",
		"run_id", runID, "record_id", record.RecordID, "nodes", len(roadmap.InitialNodes))
	return &RoadmapResult{RunID: runID, Roadmap: roadmap, Record: record}, nil
}

// RunStatus returns the raw state of a previously dispatched roadmap run.
func (s *RoadmapService) RunStatus(ctx context.Context, runID string) (*model.Run, error) {
	return s.runs.Status(ctx, runID)
}
