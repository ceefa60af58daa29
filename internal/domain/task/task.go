package task

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// Status represents where a task is in its workflow
type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCanceled   Status = "canceled"
)

// Label is the kind of task
type Label string

const (
	LabelBug           Label = "bug"
	LabelFeature       Label = "feature"
	LabelDocumentation Label = "documentation"
)

// Priority orders tasks
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is an administrator's work item, scoped to a user rather than a business
type Task struct {
	shared.UserEntity
	Title    string
	Label    Label
	Status   Status
	Priority Priority
}

// NewTask creates a task in the todo state
func NewTask(userID uuid.UUID, title string, label Label, priority Priority) (*Task, error) {
	t := &Task{
		UserEntity: shared.NewUserEntity(userID),
		Status:     StatusTodo,
	}
	if err := t.Update(title, label, priority); err != nil {
		return nil, err
	}
	return t, nil
}

// Update changes title, label and priority
func (t *Task) Update(title string, label Label, priority Priority) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Task title cannot be empty")
	}
	if utf8.RuneCountInString(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Task title cannot exceed 200 characters")
	}
	if !label.IsValid() {
		return shared.NewDomainError("INVALID_LABEL", "Invalid task label")
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return shared.NewDomainError("INVALID_PRIORITY", "Invalid task priority")
	}
	t.Title = title
	t.Label = label
	t.Priority = priority
	t.Touch()
	return nil
}

// SetStatus moves the task to another status
func (t *Task) SetStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid task status")
	}
	t.Status = status
	t.Touch()
	return nil
}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusDone, StatusCanceled:
		return true
	}
	return false
}

// IsValid reports whether l is a known label
func (l Label) IsValid() bool {
	switch l {
	case LabelBug, LabelFeature, LabelDocumentation:
		return true
	}
	return false
}

// IsValid reports whether p is a known priority
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
