package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	"github.com/APVS-BRO/ai-careers-hub/internal/mocks"
	"github.com/APVS-BRO/ai-careers-hub/internal/service"
)

func newUserRouter(t *testing.T) (*mocks.MockUserRepository, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepository(ctrl)
	router := NewRouter(RouterServices{
		Users: service.NewUserService(service.UserServiceOptions{Repo: repo}),
		Auth:  newFakeAuthService(testSession()),
	})
	return repo, router
}

func TestUserHandlers_Ensure_UpsertsSessionIdentity(t *testing.T) {
	t.Parallel()
	repo, router := newUserRouter(t)

	repo.EXPECT().UpsertByEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateUserRequest) (*model.User, error) {
			assert.Equal(t, "Test User", req.Name)
			assert.Equal(t, "user@example.com", req.Email)
			return &model.User{ID: 1, Name: req.Name, Email: req.Email}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/user", nil)
	addSessionCookie(req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestUserHandlers_Ensure_RequiresSession(t *testing.T) {
	t.Parallel()
	_, router := newUserRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	code, _ := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, "unauthorized", code)
}

func TestUserHandlers_Ensure_RejectsStaleCookie(t *testing.T) {
	t.Parallel()
	_, router := newUserRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "no-such-session"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
