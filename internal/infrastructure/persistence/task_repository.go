package persistence

import (
	"github.com/pos/backend/internal/domain/task"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

type taskTable = ScopedTable[task.Task, models.TaskModel, *models.TaskModel]

// GormTaskRepository implements TaskRepository using GORM.
// Tasks are scoped by user id.
type GormTaskRepository struct {
	*taskTable
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{
		taskTable: NewScopedTable[task.Task, models.TaskModel](db, TableOptions{
			Resource:      "Task",
			Collection:    "tasks",
			ScopeColumn:   "user_id",
			SortFields:    TaskSortFields,
			SearchColumns: []string{"title"},
		}),
	}
}

// Ensure GormTaskRepository implements TaskRepository
var _ task.TaskRepository = (*GormTaskRepository)(nil)
