package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/application/common"
	taskapp "github.com/pos/backend/internal/application/task"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/interfaces/http/middleware"
)

// TaskHandler handles task-related API endpoints.
// Every task endpoint requires the admin role; tasks are scoped to their author.
type TaskHandler struct {
	BaseHandler
	taskService *taskapp.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *taskapp.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) actor(c *gin.Context) (shared.Actor, bool) {
	actor := middleware.GetActor(c)
	if !actor.IsAuthenticated() {
		h.Unauthorized(c, "Authentication required")
		return actor, false
	}
	return actor, true
}

// List godoc
// @ID           listTasks
// @Summary      List tasks
// @Description  Returns a page of the caller's tasks
// @Tags         tasks
// @Produce      json
// @Param        search query string false "Title filter"
// @Param        trashed query bool false "List the trash instead of active tasks"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]taskapp.TaskResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	filter, ok := h.bindList(c)
	if !ok {
		return
	}

	tasks, total, err := h.taskService.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := pageOf(filter)
	h.SuccessWithMeta(c, tasks, total, page, pageSize)
}

// Create godoc
// @ID           createTask
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body taskapp.CreateTaskRequest true "Task creation request"
// @Success      201 {object} APIResponse[taskapp.TaskResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req taskapp.CreateTaskRequest
	if !h.bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, task)
}

// Get godoc
// @ID           getTask
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID" format(uuid)
// @Success      200 {object} APIResponse[taskapp.TaskResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, task)
}

// Update godoc
// @ID           updateTask
// @Summary      Update a task
// @Description  Only active tasks can be updated
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID" format(uuid)
// @Param        request body taskapp.UpdateTaskRequest true "Task update request"
// @Success      200 {object} APIResponse[taskapp.TaskResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req taskapp.UpdateTaskRequest
	if !h.bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, task)
}

// Remove godoc
// @ID           removeTask
// @Summary      Delete a task
// @Description  Moves an active task to the trash. Deleting a trashed task removes it for good.
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Remove(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.taskService.Remove(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, common.NewRemoveResponse(id, result))
}

// Restore godoc
// @ID           restoreTask
// @Summary      Restore a task from the trash
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID" format(uuid)
// @Success      200 {object} APIResponse[taskapp.TaskResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks/{id}/restore [post]
func (h *TaskHandler) Restore(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Restore(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, task)
}

// PermanentRemove godoc
// @ID           permanentRemoveTask
// @Summary      Permanently delete a trashed task
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks/{id}/permanent [delete]
func (h *TaskHandler) PermanentRemove(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.PermanentRemove(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, common.NewRemoveResponse(id, shared.PermanentlyDeleted))
}
