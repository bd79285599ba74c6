package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/APVS-BRO/ai-careers-hub/internal/domain/auth"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	"github.com/APVS-BRO/ai-careers-hub/internal/mocks"
	"github.com/APVS-BRO/ai-careers-hub/internal/service"
)

const testSessionID = "sess-test-1"

// fakeAuthService satisfies AuthServiceInterface with a static session map,
// enough to drive the auth middleware in handler tests.
type fakeAuthService struct {
	sessions map[string]*domainauth.Session
}

func newFakeAuthService(sessions ...*domainauth.Session) *fakeAuthService {
	m := make(map[string]*domainauth.Session, len(sessions))
	for _, s := range sessions {
		m[s.ID] = s
	}
	return &fakeAuthService{sessions: m}
}

func (f *fakeAuthService) BeginLogin(context.Context, string) (*service.BeginLoginResult, error) {
	return &service.BeginLoginResult{AuthURL: "https://idp.example.com/auth", State: "s", Nonce: "n"}, nil
}

func (f *fakeAuthService) CompleteLogin(context.Context, service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
	return nil, errors.New("not supported in fake")
}

func (f *fakeAuthService) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if s, ok := f.sessions[sessionID]; ok {
		return s, nil
	}
	return nil, errors.New("session not found")
}

func (f *fakeAuthService) Logout(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func testSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        testSessionID,
		Subject:   "user-1",
		Name:      "Test User",
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func addSessionCookie(r *http.Request) {
	r.AddCookie(&http.Cookie{Name: "session_id", Value: testSessionID})
}

// fastRuns builds a RunClient over gomock ports with a millisecond poll so
// handler tests never wait on real delays.
func fastRuns(t *testing.T) (*mocks.MockRunDispatcher, *mocks.MockRunStatusFetcher, service.RunClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	dispatcher := mocks.NewMockRunDispatcher(ctrl)
	fetcher := mocks.NewMockRunStatusFetcher(ctrl)
	runs := service.RunClient{
		Dispatcher: dispatcher,
		Fetcher:    fetcher,
		Poll:       service.PollConfig{Interval: time.Millisecond, Timeout: time.Second},
	}
	return dispatcher, fetcher, runs
}

// completedRun builds a terminal run carrying raw agent text, encoded the way
// run stores encode it.
func completedRun(t *testing.T, runID, text string) *model.Run {
	t.Helper()
	encoded, err := json.Marshal(text)
	require.NoError(t, err)
	return &model.Run{ID: runID, Status: model.RunStatusCompleted, Output: encoded}
}

func decodeErrorBody(t *testing.T, body []byte) (code, message string) {
	t.Helper()
	var parsed struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	return parsed.Error.Code, parsed.Error.Message
}
