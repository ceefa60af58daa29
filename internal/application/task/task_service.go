package task

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/task"
)

// TaskService manages an administrator's tasks. Every operation checks the
// actor's role before touching the repository and scopes by the actor's id.
type TaskService struct {
	taskRepo task.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo task.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// Create creates a task owned by the actor
func (s *TaskService) Create(ctx context.Context, actor shared.Actor, req CreateTaskRequest) (*TaskResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	t, err := task.NewTask(actor.UserID, req.Title, task.Label(req.Label), task.Priority(req.Priority))
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	response := ToTaskResponse(t)
	return &response, nil
}

// Get retrieves one of the actor's tasks
func (s *TaskService) Get(ctx context.Context, actor shared.Actor, taskID uuid.UUID) (*TaskResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	t, err := s.taskRepo.FindOrThrow(ctx, actor.UserID, taskID)
	if err != nil {
		return nil, err
	}
	response := ToTaskResponse(t)
	return &response, nil
}

// List retrieves a page of the actor's tasks
func (s *TaskService) List(ctx context.Context, actor shared.Actor, filter common.ListFilter) ([]TaskResponse, int64, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, 0, err
	}
	return common.ListPage[task.Task](ctx, s.taskRepo, actor.UserID, filter, ToTaskResponse)
}

// Update changes an active task
func (s *TaskService) Update(ctx context.Context, actor shared.Actor, taskID uuid.UUID, req UpdateTaskRequest) (*TaskResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	t, err := s.taskRepo.FindOrThrow(ctx, actor.UserID, taskID)
	if err != nil {
		return nil, err
	}
	if err := t.EnsureActive("Task"); err != nil {
		return nil, err
	}

	title, label, priority := t.Title, t.Label, t.Priority
	if req.Title != nil {
		title = *req.Title
	}
	if req.Label != nil {
		label = task.Label(*req.Label)
	}
	if req.Priority != nil {
		priority = task.Priority(*req.Priority)
	}
	if err := t.Update(title, label, priority); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if err := t.SetStatus(task.Status(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	response := ToTaskResponse(t)
	return &response, nil
}

// Remove trashes an active task or deletes a trashed one
func (s *TaskService) Remove(ctx context.Context, actor shared.Actor, taskID uuid.UUID) (shared.RemoveResult, error) {
	if err := actor.RequireAdmin(); err != nil {
		return "", err
	}
	return s.taskRepo.Remove(ctx, actor.UserID, taskID)
}

// Restore brings a trashed task back
func (s *TaskService) Restore(ctx context.Context, actor shared.Actor, taskID uuid.UUID) (*TaskResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if _, err := s.taskRepo.Restore(ctx, actor.UserID, taskID); err != nil {
		return nil, err
	}
	return s.Get(ctx, actor, taskID)
}

// PermanentRemove deletes a trashed task
func (s *TaskService) PermanentRemove(ctx context.Context, actor shared.Actor, taskID uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return s.taskRepo.PermanentRemove(ctx, actor.UserID, taskID)
}
