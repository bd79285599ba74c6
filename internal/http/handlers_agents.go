package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	"github.com/APVS-BRO/ai-careers-hub/internal/service"
)

// maxResumeUploadBytes caps the multipart resume upload size.
const maxResumeUploadBytes = 10 << 20

// ChatHandlers provides HTTP handlers for the career chat agent.
type ChatHandlers struct {
	Svc *service.ChatService
}

type chatRequest struct {
	UserInput string `json:"userInput"`
}

// Ask handles POST /api/ai-career-chat-agent.
func (h *ChatHandlers) Ask(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Ask(r.Context(), req.UserInput)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// RunStatus handles GET /api/ai-career-chat-agent?runId=...
func (h *ChatHandlers) RunStatus(w http.ResponseWriter, r *http.Request) {
	writeRunStatus(w, r, h.Svc.RunStatus)
}

// ResumeHandlers provides HTTP handlers for the resume analysis agent.
type ResumeHandlers struct {
	Svc *service.ResumeService
}

// Analyze handles POST /api/ai-resume-analysis-agent. The request is a
// multipart form with a resumeFile part and a recordId field.
func (h *ResumeHandlers) Analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeUploadBytes); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_multipart", Err: err})
		return
	}

	recordID := r.FormValue("recordId")
	file, header, err := r.FormFile("resumeFile")
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation",
			Err:     errors.New("resumeFile is required"),
		})
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(io.LimitReader(file, maxResumeUploadBytes))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_upload", Err: err})
		return
	}

	result, err := h.Svc.Analyze(r.Context(), service.AnalyzeResumeInput{
		RecordID:  recordID,
		FileName:  header.Filename,
		File:      contents,
		UserEmail: SessionEmail(r.Context()),
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// RunStatus handles GET /api/ai-resume-analysis-agent?runId=...
func (h *ResumeHandlers) RunStatus(w http.ResponseWriter, r *http.Request) {
	writeRunStatus(w, r, h.Svc.RunStatus)
}

// RoadmapHandlers provides HTTP handlers for the roadmap generator agent.
type RoadmapHandlers struct {
	Svc *service.RoadmapService
}

type roadmapRequest struct {
	RecordID  string `json:"recordId"`
	UserInput string `json:"userInput"`
}

// Generate handles POST /api/ai-roadmap-generator-agent.
func (h *RoadmapHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	var req roadmapRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Generate(r.Context(), service.GenerateRoadmapInput{
		RecordID:  req.RecordID,
		UserInput: req.UserInput,
		UserEmail: SessionEmail(r.Context()),
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// RunStatus handles GET /api/ai-roadmap-generator-agent?runId=...
func (h *RoadmapHandlers) RunStatus(w http.ResponseWriter, r *http.Request) {
	writeRunStatus(w, r, h.Svc.RunStatus)
}

// writeRunStatus serves the raw run status passthrough shared by the three
// agent routes. A missing runId is a 400.
func writeRunStatus(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(context.Context, string) (*model.Run, error),
) {
	runID := r.URL.Query().Get("runId")
	run, err := fetch(r.Context(), runID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, run)
}
