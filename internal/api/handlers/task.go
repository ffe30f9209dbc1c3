package handlers

import (
	"net/http"
	"strconv"

	"taskask-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler handles HTTP requests for task lifecycle operations
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles POST /tasks
// @Summary Create a new task
// @Description Creates a task authored by a MANAGER, ADMIN, or TEAM_LEAD and assigned to an EMPLOYEE; notifies the assignee
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Successfully created task"
// @Failure 400 {object} map[string]interface{} "Invalid request or role combination"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasksForAssignee handles GET /tasks/assigned/:userId
// @Summary List tasks assigned to a user
// @Description Returns all of a user's assigned tasks; pass limit/offset for a bounded page with total count
// @Tags tasks
// @Produce json
// @Param userId path string true "Assignee user ID (UUID)"
// @Param limit query int false "Page size (enables paging)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.TaskPageResponse "Page of tasks"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Security BearerAuth
// @Router /tasks/assigned/{userId} [get]
func (h *TaskHandler) GetTasksForAssignee(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			limit = 20
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		page, err := h.taskService.GetTasksForAssigneePaged(userID, limit, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
		return
	}

	tasks, err := h.taskService.GetTasksForAssignee(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTasksCreatedBy handles GET /tasks/created/:userId
// @Summary List tasks created by a user
// @Tags tasks
// @Produce json
// @Param userId path string true "Creator user ID (UUID)"
// @Success 200 {array} service.TaskResponse "Tasks authored by the user"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Security BearerAuth
// @Router /tasks/created/{userId} [get]
func (h *TaskHandler) GetTasksCreatedBy(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	tasks, err := h.taskService.GetTasksCreatedBy(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask handles PATCH /tasks/:taskId/status
// @Summary Update a task's status and/or priority
// @Description Partial update; transitioning into COMPLETED notifies the task's creator
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskId path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} service.TaskResponse "Updated task"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Security BearerAuth
// @Router /tasks/{taskId}/status [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskService.UpdateTask(taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:taskId
// @Summary Delete a task
// @Description Hard-deletes the task; notifications referencing it keep a dangling optional reference
// @Tags tasks
// @Produce json
// @Param taskId path string true "Task ID (UUID)"
// @Success 204 "Task deleted"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Security BearerAuth
// @Router /tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	if err := h.taskService.DeleteTask(taskID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAllTasks handles GET /admin/tasks
// @Summary List all tasks (admin)
// @Tags admin
// @Produce json
// @Success 200 {array} service.TaskResponse "All tasks"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/tasks [get]
func (h *TaskHandler) GetAllTasks(c *gin.Context) {
	tasks, err := h.taskService.GetAllTasks()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
