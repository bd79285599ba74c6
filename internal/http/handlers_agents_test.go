package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	"github.com/APVS-BRO/ai-careers-hub/internal/mocks"
	"github.com/APVS-BRO/ai-careers-hub/internal/service"
)

const testRunID = "run-http-1"

func TestChatHandlers_Ask_Success(t *testing.T) {
	t.Parallel()
	dispatcher, fetcher, runs := fastRuns(t)

	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event model.AgentEvent) (string, error) {
			assert.Equal(t, model.EventCareerChat, event.Name)
			return testRunID, nil
		})
	fetcher.EXPECT().GetRun(gomock.Any(), testRunID).
		Return(completedRun(t, testRunID, "Focus on backend fundamentals first."), nil)

	router := NewRouter(RouterServices{
		Chat: service.NewChatService(service.ChatServiceOptions{Runs: runs}),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/ai-career-chat-agent",
		strings.NewReader(`{"userInput":"How do I become a backend engineer?"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result service.ChatResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, testRunID, result.RunID)
	assert.Equal(t, "Focus on backend fundamentals first.", result.Answer)
}

func TestChatHandlers_Ask_EmptyInputIsBadRequest(t *testing.T) {
	t.Parallel()
	_, _, runs := fastRuns(t)
	router := NewRouter(RouterServices{
		Chat: service.NewChatService(service.ChatServiceOptions{Runs: runs}),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/ai-career-chat-agent",
		strings.NewReader(`{"userInput":"   "}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, "validation", code)
}

func TestChatHandlers_Ask_MalformedBodyIsBadRequest(t *testing.T) {
	t.Parallel()
	_, _, runs := fastRuns(t)
	router := NewRouter(RouterServices{
		Chat: service.NewChatService(service.ChatServiceOptions{Runs: runs}),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/ai-career-chat-agent",
		strings.NewReader(`{"userInput": `))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, "invalid_json", code)
}

func TestChatHandlers_RunStatus(t *testing.T) {
	t.Parallel()
	_, fetcher, runs := fastRuns(t)
	fetcher.EXPECT().GetRun(gomock.Any(), testRunID).
		Return(&model.Run{ID: testRunID, Status: model.RunStatusRunning}, nil)

	router := NewRouter(RouterServices{
		Chat: service.NewChatService(service.ChatServiceOptions{Runs: runs}),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ai-career-chat-agent?runId="+testRunID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var run model.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, testRunID, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)
}

func TestChatHandlers_RunStatus_MissingRunID(t *testing.T) {
	t.Parallel()
	_, _, runs := fastRuns(t)
	router := NewRouter(RouterServices{
		Chat: service.NewChatService(service.ChatServiceOptions{Runs: runs}),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ai-career-chat-agent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, "validation", code)
}

func TestRoadmapHandlers_Generate_AttachesSessionEmail(t *testing.T) {
	t.Parallel()
	dispatcher, fetcher, runs := fastRuns(t)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	history := mocks.NewMockHistoryRepository(ctrl)

	const roadmapJSON = `{
		"roadmapTitle": "Cloud Engineering Roadmap",
		"description": "Networking to Kubernetes.",
		"duration": "6 Months",
		"initialNodes": [
			{"id": "1", "type": "turbo", "position": {"x": 0, "y": 0},
			 "data": {"title": "Linux", "description": "Shell and processes.", "link": "https://example.com/linux"}}
		],
		"initialEdges": []
	}`

	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event model.AgentEvent) (string, error) {
			var data model.RoadmapEventData
			require.NoError(t, json.Unmarshal(event.Data, &data))
			assert.Equal(t, "user@example.com", data.UserEmail)
			return testRunID, nil
		})
	fetcher.EXPECT().GetRun(gomock.Any(), testRunID).
		Return(completedRun(t, testRunID, "```json\n"+roadmapJSON+"\n```"), nil)
	history.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.SaveHistoryRequest) (*model.HistoryRecord, error) {
			require.NotNil(t, req.UserEmail)
			assert.Equal(t, "user@example.com", *req.UserEmail)
			return &model.HistoryRecord{ID: 1, RecordID: req.RecordID, Content: req.Content, AIAgentType: req.AIAgentType}, nil
		})

	router := NewRouter(RouterServices{
		Roadmap: service.NewRoadmapService(service.RoadmapServiceOptions{Runs: runs, History: history}),
		Auth:    newFakeAuthService(testSession()),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/ai-roadmap-generator-agent",
		strings.NewReader(`{"recordId":"rec-rm-1","userInput":"cloud engineering"}`))
	addSessionCookie(req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result service.RoadmapResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Cloud Engineering Roadmap", result.Roadmap.RoadmapTitle)
	assert.Equal(t, "rec-rm-1", result.Record.RecordID)
}

func TestResumeHandlers_Analyze_Multipart(t *testing.T) {
	t.Parallel()
	dispatcher, fetcher, runs := fastRuns(t)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	history := mocks.NewMockHistoryRepository(ctrl)
	extractor := mocks.NewMockResumeTextExtractor(ctrl)

	const reportJSON = `{
		"overall_score": 74,
		"overall_feedback": "Solid",
		"summary_comment": "Good base, thin metrics.",
		"sections": {
			"contact_info": {"score": 90, "comment": "Complete."},
			"experience": {"score": 70, "comment": "Add impact numbers."},
			"education": {"score": 80, "comment": "Fine."},
			"skills": {"score": 65, "comment": "Group by proficiency."}
		},
		"tips_for_improvement": ["Quantify outcomes."],
		"whats_good": ["Clear layout."],
		"needs_improvement": ["Experience bullets."]
	}`

	extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any()).
		Return("Jane Doe. Backend engineer, five years of Go.", nil)
	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).Return(testRunID, nil)
	fetcher.EXPECT().GetRun(gomock.Any(), testRunID).
		Return(completedRun(t, testRunID, "```json\n"+reportJSON+"\n```"), nil)
	history.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.SaveHistoryRequest) (*model.HistoryRecord, error) {
			assert.Equal(t, "rec-resume-1", req.RecordID)
			return &model.HistoryRecord{ID: 2, RecordID: req.RecordID, Content: req.Content, AIAgentType: req.AIAgentType}, nil
		})

	router := NewRouter(RouterServices{
		Resume: service.NewResumeService(service.ResumeServiceOptions{
			Runs:    runs,
			History: history,
			Files:   service.ResumeFileOptions{Extractor: extractor},
		}),
	})

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("recordId", "rec-resume-1"))
	part, err := form.CreateFormFile("resumeFile", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ai-resume-analysis-agent", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result service.ResumeAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 74, result.Report.OverallScore)
	assert.Equal(t, "rec-resume-1", result.Record.RecordID)
}

func TestResumeHandlers_Analyze_MissingFile(t *testing.T) {
	t.Parallel()
	_, _, runs := fastRuns(t)
	router := NewRouter(RouterServices{
		Resume: service.NewResumeService(service.ResumeServiceOptions{Runs: runs}),
	})

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("recordId", "rec-resume-2"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ai-resume-analysis-agent", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, message := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, "validation", code)
	assert.Contains(t, message, "resumeFile")
}

func TestResumeHandlers_Analyze_NotMultipart(t *testing.T) {
	t.Parallel()
	_, _, runs := fastRuns(t)
	router := NewRouter(RouterServices{
		Resume: service.NewResumeService(service.ResumeServiceOptions{Runs: runs}),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/ai-resume-analysis-agent",
		strings.NewReader(`{"recordId":"rec-resume-3"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, "invalid_multipart", code)
}
