package models

import "github.com/pos/backend/internal/domain/task"

// TaskModel is the persistence model for the Task domain entity.
type TaskModel struct {
	UserScopedModel
	Title    string        `gorm:"type:varchar(200);not null"`
	Label    task.Label    `gorm:"type:varchar(20);not null"`
	Status   task.Status   `gorm:"type:varchar(20);not null;default:'todo'"`
	Priority task.Priority `gorm:"type:varchar(20);not null;default:'medium'"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// UpdatableColumns lists the columns an update may write
func (TaskModel) UpdatableColumns() []string {
	return []string{"title", "label", "status", "priority", "updated_at"}
}

// ToDomain converts the persistence model to a domain Task entity.
func (m *TaskModel) ToDomain() *task.Task {
	return &task.Task{
		UserEntity: m.ToUserEntity(),
		Title:      m.Title,
		Label:      m.Label,
		Status:     m.Status,
		Priority:   m.Priority,
	}
}

// FromDomain populates the persistence model from a domain Task entity.
func (m *TaskModel) FromDomain(t *task.Task) {
	m.FromUserEntity(t.UserEntity)
	m.Title = t.Title
	m.Label = t.Label
	m.Status = t.Status
	m.Priority = t.Priority
}
