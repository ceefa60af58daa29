package task

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/task"
)

// CreateTaskRequest represents a request to create a task
type CreateTaskRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Label    string `json:"label" binding:"required,oneof=bug feature documentation"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest represents a partial update of a task
type UpdateTaskRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=200"`
	Label    *string `json:"label" binding:"omitempty,oneof=bug feature documentation"`
	Priority *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status   *string `json:"status" binding:"omitempty,oneof=backlog todo in_progress done canceled"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Label     string     `json:"label"`
	Status    string     `json:"status"`
	Priority  string     `json:"priority"`
	State     string     `json:"state"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToTaskResponse converts a domain Task to a response
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Label:     string(t.Label),
		Status:    string(t.Status),
		Priority:  string(t.Priority),
		State:     string(t.State()),
		DeletedAt: t.DeletedAt,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
