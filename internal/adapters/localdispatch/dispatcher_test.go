package localdispatch

import (
	"context"
	"errors"
	"testing"

	redisq "github.com/APVS-BRO/ai-careers-hub/internal/adapters/redis"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
	"github.com/APVS-BRO/ai-careers-hub/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeQueue struct {
	tasks   []redisq.Task
	pushErr error
}

func (q *fakeQueue) Push(_ context.Context, task redisq.Task) error {
	if q.pushErr != nil {
		return q.pushErr
	}
	q.tasks = append(q.tasks, task)
	return nil
}

func newDispatcher(t *testing.T, queue TaskQueue) (*mocks.MockRunStateStore, *Dispatcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mocks.NewMockRunStateStore(ctrl)
	return store, NewDispatcher(store, queue)
}

func chatEvent(t *testing.T) model.AgentEvent {
	t.Helper()
	event, err := model.NewAgentEvent(model.EventCareerChat, model.ChatEventData{UserInput: "hi"})
	require.NoError(t, err)
	return event
}

func TestDispatcher_Send_CreatesPendingRunAndQueuesTask(t *testing.T) {
	t.Parallel()
	queue := &fakeQueue{}
	store, dispatcher := newDispatcher(t, queue)

	store.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *model.Run) error {
			assert.NotEmpty(t, run.ID)
			assert.Equal(t, model.EventCareerChat, run.Event)
			assert.Equal(t, model.RunStatusPending, run.Status)
			return nil
		})

	runID, err := dispatcher.Send(context.Background(), chatEvent(t))
	require.NoError(t, err)
	require.Len(t, queue.tasks, 1)
	assert.Equal(t, runID, queue.tasks[0].RunID)
	assert.Equal(t, model.EventCareerChat, queue.tasks[0].Event.Name)
}

func TestDispatcher_Send_InvalidEvent(t *testing.T) {
	t.Parallel()
	_, dispatcher := newDispatcher(t, &fakeQueue{})

	_, err := dispatcher.Send(context.Background(), model.AgentEvent{Name: "bogus"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDispatcher_Send_QueueFailureFailsRun(t *testing.T) {
	t.Parallel()
	queue := &fakeQueue{pushErr: errors.New("redis down")}
	store, dispatcher := newDispatcher(t, queue)

	var createdID string
	store.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *model.Run) error {
			createdID = run.ID
			return nil
		})
	store.EXPECT().Fail(gomock.Any(), gomock.Any(), model.RunStatusFailed, gomock.Any()).
		DoAndReturn(func(_ context.Context, runID string, _ model.RunStatus, _ string) error {
			assert.Equal(t, createdID, runID)
			return nil
		})

	_, err := dispatcher.Send(context.Background(), chatEvent(t))
	require.Error(t, err)
}
