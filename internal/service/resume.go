package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/agent"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// ResumeServiceOptions groups dependencies for ResumeService.
type ResumeServiceOptions struct {
	Runs    RunClient
	History core.HistoryRepository
	Files   ResumeFileOptions
}

// ResumeFileOptions groups the file-handling dependencies of the resume flow.
// Uploader may be nil, in which case no hosted URL is recorded.
type ResumeFileOptions struct {
	Extractor core.ResumeTextExtractor
	Uploader  core.MediaUploader
	Logger    *slog.Logger
}

// ResumeService runs the resume analysis flow: extract PDF text, upload the
// original file, dispatch the analyzer agent, wait, parse the fenced JSON
// report, and persist it idempotently under the client's record ID.
type ResumeService struct {
	runs      RunClient
	history   core.HistoryRepository
	extractor core.ResumeTextExtractor
	uploader  core.MediaUploader
	logger    *slog.Logger
}

// NewResumeService constructs a new ResumeService.
func NewResumeService(opts ResumeServiceOptions) *ResumeService {
	logger := opts.Files.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ResumeService{
		runs:      opts.Runs,
		history:   opts.History,
		extractor: opts.Files.Extractor,
		uploader:  opts.Files.Uploader,
		logger:    logger.With("service", "resume"),
	}
}

// AnalyzeResumeInput carries one uploaded resume.
type AnalyzeResumeInput struct {
	RecordID  string
	FileName  string
	File      []byte
	UserEmail *string
}

// ResumeAnalysis is the outcome of a resume run: the validated report plus
// the history row it was persisted as.
type ResumeAnalysis struct {
	RunID  string               `json:"runId"`
	Report *model.ResumeReport  `json:"report"`
	Record *model.HistoryRecord `json:"record"`
}

// Analyze runs the full resume analysis flow for one uploaded PDF.
func (s *ResumeService) Analyze(ctx context.Context, in AnalyzeResumeInput) (*ResumeAnalysis, error) {
	if strings.TrimSpace(in.RecordID) == "" {
		return nil, apperrors.ValidationField("recordId", "recordId is required")
	}
	if len(in.File) == 0 {
		return nil, apperrors.ValidationField("resumeFile", "resumeFile is required")
	}

	text, err := s.extractor.ExtractText(bytes.NewReader(in.File), int64(len(in.File)))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "resumeFile is not a readable PDF")
	}

	encoded := base64.StdEncoding.EncodeToString(in.File)
	hostedURL := s.uploadOriginal(ctx, in, encoded)

	payload := model.ResumeEventData{
		RecordID:         in.RecordID,
		PDFText:          text,
		Base64ResumeFile: encoded,
		AIAgentType:      string(model.AgentTypeResumeAnalysis),
	}
	if in.UserEmail != nil {
		payload.UserEmail = *in.UserEmail
	}
	event, err := model.NewAgentEvent(model.EventResumeAnalysis, payload)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "build resume event")
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
	decoded, err := model.DecodeContent(model.AgentTypeResumeAnalysis, content)
	if err != nil {
		return nil, apperrors.Parse("agent returned a malformed resume report", err)
	}
	report, ok := decoded.(*model.ResumeReport)
	if !ok {
		return nil, apperrors.Parse("agent returned a malformed resume report", nil)
	}

	record, err := s.history.SaveIfAbsent(ctx, &model.SaveHistoryRequest{
		RecordID:    in.RecordID,
		Content:     content,
		AIAgentType: string(model.AgentTypeResumeAnalysis),
		UserEmail:   in.UserEmail,
		URLs:        hostedURL,
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "resume analysis persisted",
		"run_id", runID, "record_id", record.RecordID, "overall_score", report.OverallScore)
	return &ResumeAnalysis{RunID: runID, Report: report, Record: record}, nil
}

// uploadOriginal pushes the raw PDF to the media CDN. The hosted copy is a
// convenience for the dashboard; analysis proceeds without it on failure.
func (s *ResumeService) uploadOriginal(ctx context.Context, in AnalyzeResumeInput, encoded string) *string {
	if s.uploader == nil {
		return nil
	}
	name := in.FileName
	if name == "" {
		name = in.RecordID + ".pdf"
	}
	url, err := s.uploader.Upload(ctx, core.UploadRequest{FileName: name, Base64Data: encoded})
	if err != nil {
		s.logger.WarnContext(ctx, "resume upload failed", "record_id", in.RecordID, "err", err)
		return nil
	}
	return &url
}

// RunStatus returns the raw state of a previously dispatched resume run.
func (s *ResumeService) RunStatus(ctx context.Context, runID string) (*model.Run, error) {
	return s.runs.Status(ctx, runID)
}
