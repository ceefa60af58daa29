package task

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/task"
	"github.com/pos/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTaskRepo struct {
	testutil.MockScoped[task.Task]
}

func TestTaskService_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	member := shared.Actor{UserID: uuid.New(), Role: shared.RoleUser}
	anonymous := shared.Actor{}

	calls := map[string]func(*TaskService, shared.Actor) error{
		"create": func(s *TaskService, a shared.Actor) error {
			_, err := s.Create(ctx, a, CreateTaskRequest{Title: "x", Label: "bug"})
			return err
		},
		"get": func(s *TaskService, a shared.Actor) error {
			_, err := s.Get(ctx, a, id)
			return err
		},
		"list": func(s *TaskService, a shared.Actor) error {
			_, _, err := s.List(ctx, a, common.ListFilter{})
			return err
		},
		"update": func(s *TaskService, a shared.Actor) error {
			_, err := s.Update(ctx, a, id, UpdateTaskRequest{})
			return err
		},
		"remove": func(s *TaskService, a shared.Actor) error {
			_, err := s.Remove(ctx, a, id)
			return err
		},
		"restore": func(s *TaskService, a shared.Actor) error {
			_, err := s.Restore(ctx, a, id)
			return err
		},
		"permanent remove": func(s *TaskService, a shared.Actor) error {
			return s.PermanentRemove(ctx, a, id)
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			repo := new(mockTaskRepo)
			svc := NewTaskService(repo)

			assert.ErrorIs(t, call(svc, member), shared.ErrForbidden)
			assert.ErrorIs(t, call(svc, anonymous), shared.ErrUnauthorized)
			assert.Empty(t, repo.Calls, "no repository call before the role check")
		})
	}
}

func TestTaskService_AdminFlow(t *testing.T) {
	ctx := context.Background()
	admin := shared.Actor{UserID: uuid.New(), Role: shared.RoleAdmin}
	repo := new(mockTaskRepo)
	svc := NewTaskService(repo)

	repo.On("Create", ctx, mock.AnythingOfType("*task.Task")).Return(nil)
	created, err := svc.Create(ctx, admin, CreateTaskRequest{Title: "Count the till", Label: "feature"})
	require.NoError(t, err)
	assert.Equal(t, admin.UserID, created.UserID)
	assert.Equal(t, string(task.StatusTodo), created.Status)
	assert.Equal(t, string(task.PriorityMedium), created.Priority)

	stored := &task.Task{}
	stored.ID = created.ID
	stored.UserID = admin.UserID
	stored.Title = created.Title
	stored.Label = task.LabelFeature
	stored.Status = task.StatusTodo
	stored.Priority = task.PriorityMedium
	repo.On("FindOrThrow", ctx, admin.UserID, created.ID).Return(stored, nil)
	repo.On("Update", ctx, stored).Return(nil)

	done := string(task.StatusDone)
	updated, err := svc.Update(ctx, admin, created.ID, UpdateTaskRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, "done", updated.Status)
	assert.Equal(t, "Count the till", updated.Title)

	bad := "urgent"
	_, err = svc.Update(ctx, admin, created.ID, UpdateTaskRequest{Priority: &bad})
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "INVALID_PRIORITY", de.Code)
}
