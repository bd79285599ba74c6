package redis

import (
	"context"
	"testing"
	"time"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	"github.com/APVS-BRO/ai-careers-hub/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_PushPopRoundTrip(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	queue := NewQueue(client, "test:queue:"+uuid.NewString())
	ctx := context.Background()

	event, err := model.NewAgentEvent(model.EventCareerChat, model.ChatEventData{UserInput: "hello"})
	require.NoError(t, err)
	task := Task{RunID: uuid.NewString(), Event: event}

	require.NoError(t, queue.Push(ctx, task))

	n, err := queue.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := queue.Pop(ctx, time.Second)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, task.RunID, got.RunID)
	assert.Equal(t, model.EventCareerChat, got.Event.Name)
}

func TestQueue_PopEmptyReturnsNil(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	queue := NewQueue(client, "test:queue:"+uuid.NewString())

	got, err := queue.Pop(context.Background(), 50*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, got)
}
