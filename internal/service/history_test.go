package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
	"github.com/APVS-BRO/ai-careers-hub/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHistoryService(t *testing.T) (*mocks.MockHistoryRepository, *HistoryService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockHistoryRepository(ctrl)
	return repo, NewHistoryService(HistoryServiceOptions{Repo: repo})
}

func TestHistoryService_Save_AttachesOwner(t *testing.T) {
	t.Parallel()
	repo, service := newHistoryService(t)
	email := "user@example.com"

	repo.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.SaveHistoryRequest) (*model.HistoryRecord, error) {
			require.NotNil(t, req.UserEmail)
			assert.Equal(t, email, *req.UserEmail)
			return &model.HistoryRecord{ID: 1, RecordID: req.RecordID, UserEmail: req.UserEmail}, nil
		})

	record, err := service.Save(context.Background(), &model.SaveHistoryRequest{
		RecordID:    testRecordID,
		Content:     json.RawMessage(`[{"role":"user","content":"hi"}]`),
		AIAgentType: string(model.AgentTypeCareerChat),
	}, &email)
	require.NoError(t, err)
	assert.Equal(t, email, *record.UserEmail)
}

func TestHistoryService_Save_NilBody(t *testing.T) {
	t.Parallel()
	_, service := newHistoryService(t)

	_, err := service.Save(context.Background(), nil, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestHistoryService_ListForUser_RequiresIdentity(t *testing.T) {
	t.Parallel()
	_, service := newHistoryService(t)

	_, err := service.ListForUser(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	empty := ""
	_, err = service.ListForUser(context.Background(), &empty)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestHistoryService_ListForUser_ReturnsRecords(t *testing.T) {
	t.Parallel()
	repo, service := newHistoryService(t)
	email := "user@example.com"

	repo.EXPECT().ListByUserEmail(gomock.Any(), email).Return([]*model.HistoryRecord{
		{ID: 2, RecordID: "rec-2"},
		{ID: 1, RecordID: "rec-1"},
	}, nil)

	records, err := service.ListForUser(context.Background(), &email)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec-2", records[0].RecordID)
}

func TestHistoryService_ReplaceContent(t *testing.T) {
	t.Parallel()
	repo, service := newHistoryService(t)

	req := &model.ReplaceContentRequest{
		RecordID: testRecordID,
		Content:  json.RawMessage(`{"v":2}`),
	}
	repo.EXPECT().ReplaceContent(gomock.Any(), req).
		Return(&model.HistoryRecord{ID: 1, RecordID: testRecordID, Content: req.Content}, nil)

	record, err := service.ReplaceContent(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(record.Content))
}

func TestHistoryService_GetByRecordID(t *testing.T) {
	t.Parallel()
	repo, service := newHistoryService(t)

	repo.EXPECT().GetByRecordID(gomock.Any(), testRecordID).
		Return(&model.HistoryRecord{ID: 1, RecordID: testRecordID}, nil)

	record, err := service.GetByRecordID(context.Background(), testRecordID)
	require.NoError(t, err)
	assert.Equal(t, testRecordID, record.RecordID)
}
