package task

import "github.com/pos/backend/internal/domain/shared"

// TaskRepository stores tasks scoped by user id
type TaskRepository interface {
	shared.ScopedRepository[Task]
}
