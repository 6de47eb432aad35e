package delivery

import (
	"errors"
	"net/http"
	"time"

	"taskflow-backend/internal/query"
	"taskflow-backend/internal/task/dto"
	"taskflow-backend/internal/task/usecase"
	"taskflow-backend/pkg/fuzzy"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

// GetTasks returns all tasks ascending by manual order
// GET /api/tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	tasks, err := h.taskUsecase.GetTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.taskUsecase.GetTask(c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := h.taskUsecase.CreateTask(req)
	if err != nil {
		h.respondError(c, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask merges the provided fields over an existing task
// PATCH /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := h.taskUsecase.UpdateTask(c.Param("id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskUsecase.DeleteTask(c.Param("id")); err != nil {
		h.respondError(c, err, "Failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderTasks persists a full id sequence as the new manual order
// POST /api/tasks/reorder
func (h *TaskHandler) ReorderTasks(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "taskIds must be an array"})
		return
	}

	if err := h.taskUsecase.ReorderTasks(req.TaskIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder tasks"})
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveTask applies a drag gesture by source/destination list position
// POST /api/tasks/move
func (h *TaskHandler) MoveTask(c *gin.Context) {
	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.taskUsecase.MoveTask(req.Source, req.Destination); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move task"})
		return
	}
	c.Status(http.StatusNoContent)
}

// AddSubtask appends a checklist item to a task
// POST /api/tasks/:id/subtasks
func (h *TaskHandler) AddSubtask(c *gin.Context) {
	var req dto.AddSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := h.taskUsecase.AddSubtask(c.Param("id"), req.Title)
	if err != nil {
		h.respondError(c, err, "Failed to add subtask")
		return
	}
	c.JSON(http.StatusOK, task)
}

// ToggleSubtask flips a subtask's completed flag
// PATCH /api/tasks/:id/subtasks/:subtaskId
func (h *TaskHandler) ToggleSubtask(c *gin.Context) {
	task, err := h.taskUsecase.ToggleSubtask(c.Param("id"), c.Param("subtaskId"))
	if err != nil {
		h.respondError(c, err, "Failed to toggle subtask")
		return
	}
	c.JSON(http.StatusOK, task)
}

// GetTaskView returns the filtered, sorted view plus aggregate stats
// GET /api/tasks/view?search=&category=&filter=all&sort=order
func (h *TaskHandler) GetTaskView(c *gin.Context) {
	tasks, err := h.taskUsecase.GetTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	now := time.Now()
	view := query.Apply(tasks, query.Params{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Filter:   query.Filter(c.DefaultQuery("filter", string(query.FilterAll))),
		Sort:     query.Sort(c.DefaultQuery("sort", string(query.SortOrder))),
		Now:      now,
	})

	c.JSON(http.StatusOK, gin.H{
		"tasks": view,
		"stats": query.Aggregate(tasks, now),
	})
}

// SearchTasks runs the typo-tolerant search over titles and descriptions
// GET /api/tasks/search?q=
func (h *TaskHandler) SearchTasks(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	tasks, err := h.taskUsecase.GetTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, fuzzy.RankTasks(q, tasks))
}

func (h *TaskHandler) respondError(c *gin.Context, err error, fallback string) {
	var verr *usecase.ValidationError
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "fields": verr.Fields})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// respondBindError surfaces gin binding failures with per-field detail when the
// underlying validator provides it.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
