package httpx

import (
	"context"
	"encoding/json"
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

func newHistoryRouter(t *testing.T) (*mocks.MockHistoryRepository, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockHistoryRepository(ctrl)
	router := NewRouter(RouterServices{
		History: service.NewHistoryService(service.HistoryServiceOptions{Repo: repo}),
		Auth:    newFakeAuthService(testSession()),
	})
	return repo, router
}

func TestHistoryHandlers_Save_AttachesSessionEmail(t *testing.T) {
	t.Parallel()
	repo, router := newHistoryRouter(t)

	repo.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.SaveHistoryRequest) (*model.HistoryRecord, error) {
			assert.Equal(t, "rec-h-1", req.RecordID)
			require.NotNil(t, req.UserEmail)
			assert.Equal(t, "user@example.com", *req.UserEmail)
			return &model.HistoryRecord{
				ID:          11,
				RecordID:    req.RecordID,
				Content:     req.Content,
				UserEmail:   req.UserEmail,
				AIAgentType: req.AIAgentType,
			}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/history", strings.NewReader(
		`{"recordId":"rec-h-1","content":[{"role":"user","content":"hi"}],"aiAgentType":"/ai-tools/ai-chat"}`))
	addSessionCookie(req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var record model.HistoryRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, int64(11), record.ID)
	assert.Equal(t, "rec-h-1", record.RecordID)
}

func TestHistoryHandlers_Save_AnonymousKeepsNilEmail(t *testing.T) {
	t.Parallel()
	repo, router := newHistoryRouter(t)

	repo.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.SaveHistoryRequest) (*model.HistoryRecord, error) {
			assert.Nil(t, req.UserEmail)
			return &model.HistoryRecord{ID: 12, RecordID: req.RecordID, Content: req.Content, AIAgentType: req.AIAgentType}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/history", strings.NewReader(
		`{"recordId":"rec-h-2","content":[],"aiAgentType":"/ai-tools/ai-chat"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHistoryHandlers_ReplaceContent(t *testing.T) {
	t.Parallel()
	repo, router := newHistoryRouter(t)

	repo.EXPECT().ReplaceContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.ReplaceContentRequest) (*model.HistoryRecord, error) {
			assert.Equal(t, "rec-h-3", req.RecordID)
			return &model.HistoryRecord{ID: 13, RecordID: req.RecordID, Content: req.Content}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/api/history", strings.NewReader(
		`{"recordId":"rec-h-3","content":[{"role":"assistant","content":"updated"}]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var record model.HistoryRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, int64(13), record.ID)
}

func TestHistoryHandlers_Get_ByRecordID_NoAuthRequired(t *testing.T) {
	t.Parallel()
	repo, router := newHistoryRouter(t)

	repo.EXPECT().GetByRecordID(gomock.Any(), "rec-h-4").
		Return(&model.HistoryRecord{ID: 14, RecordID: "rec-h-4"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/history?recordId=rec-h-4", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var record model.HistoryRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "rec-h-4", record.RecordID)
}

func TestHistoryHandlers_Get_ListRequiresSession(t *testing.T) {
	t.Parallel()
	_, router := newHistoryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	code, _ := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, "unauthorized", code)
}

func TestHistoryHandlers_Get_ListForSessionUser(t *testing.T) {
	t.Parallel()
	repo, router := newHistoryRouter(t)

	repo.EXPECT().ListByUserEmail(gomock.Any(), "user@example.com").
		Return([]*model.HistoryRecord{
			{ID: 16, RecordID: "rec-h-6"},
			{ID: 15, RecordID: "rec-h-5"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	addSessionCookie(req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var records []*model.HistoryRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "rec-h-6", records[0].RecordID)
}
