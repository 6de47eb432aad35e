package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"taskflow-backend/internal/task/domain"
	"taskflow-backend/internal/task/dto"
)

// ErrTaskNotFound signals that the referenced task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// ValidationError reports caller-fixable input problems with per-field detail.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask validates input, assigns id and display order, and records
	// the creation in the activity log
	CreateTask(req dto.CreateTaskRequest) (*domain.Task, error)

	// GetTasks returns all tasks ascending by display order
	GetTasks() ([]*domain.Task, error)

	// GetTask retrieves a task by ID
	GetTask(id string) (*domain.Task, error)

	// UpdateTask merges the provided fields over the stored task
	UpdateTask(id string, req dto.UpdateTaskRequest) (*domain.Task, error)

	// DeleteTask removes a task; ErrTaskNotFound when absent
	DeleteTask(id string) error

	// ReorderTasks persists position index as display order for each id
	ReorderTasks(ids []string) error

	// MoveTask applies a drag gesture (source index, destination index) to
	// the current order and persists the resulting sequence
	MoveTask(source, destination int) error

	// AddSubtask appends a checklist item to a task
	AddSubtask(taskID, title string) (*domain.Task, error)

	// ToggleSubtask flips a subtask's completed flag; unmatched subtask ids
	// are a no-op, not an error
	ToggleSubtask(taskID, subtaskID string) (*domain.Task, error)

	// ArchiveCompletedBefore moves tasks completed before the cutoff to the
	// archived status and reports how many were touched
	ArchiveCompletedBefore(cutoff time.Time) (int, error)
}
