package task

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	userID := uuid.New()

	t.Run("creates todo task with default priority", func(t *testing.T) {
		task, err := NewTask(userID, "Count the till", LabelFeature, "")
		require.NoError(t, err)
		assert.Equal(t, userID, task.UserID)
		assert.Equal(t, StatusTodo, task.Status)
		assert.Equal(t, PriorityMedium, task.Priority)
	})

	t.Run("rejects unknown label", func(t *testing.T) {
		_, err := NewTask(userID, "x", Label("chore"), PriorityLow)
		require.Error(t, err)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewTask(userID, " ", LabelBug, PriorityLow)
		require.Error(t, err)
	})
}

func TestTask_SetStatus(t *testing.T) {
	task, err := NewTask(uuid.New(), "Fix printer", LabelBug, PriorityHigh)
	require.NoError(t, err)

	require.NoError(t, task.SetStatus(StatusDone))
	assert.Equal(t, StatusDone, task.Status)
	require.Error(t, task.SetStatus(Status("paused")))
}
