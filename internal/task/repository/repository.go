package repository

import (
	"time"

	"taskflow-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID; returns nil, nil when absent
	FindByID(id string) (*domain.Task, error)

	// FindAll returns every task ordered ascending by display order
	FindAll() ([]*domain.Task, error)

	// Count returns the number of stored tasks
	Count() (int64, error)

	// Update persists an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error

	// UpdateOrders sets each task's display order to its position in ids.
	// Ids with no matching row are skipped; tasks omitted from ids keep
	// their previous order value.
	UpdateOrders(ids []string, now time.Time) error

	// FindCompletedBefore returns completed tasks whose completion time is
	// older than the cutoff
	FindCompletedBefore(cutoff time.Time) ([]*domain.Task, error)
}
