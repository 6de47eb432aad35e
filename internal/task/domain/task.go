package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Category is a soft tag on a task. It intentionally carries no foreign key
// to the categories table, so unknown tags are tolerated at the storage level.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryOther    Category = "other"
)

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps priorities onto a comparable scale (high=3, medium=2, low=1).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusArchived  TaskStatus = "archived"
)

// Recurrence is stored on the task but never acted upon by the backend.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Subtask is a checklist item owned by exactly one task.
type Subtask struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubtaskList is a custom type to persist the embedded subtask list as a JSON column in GORM
type SubtaskList []Subtask

// Value implements driver.Valuer
func (l SubtaskList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *SubtaskList) Scan(value interface{}) error {
	if value == nil {
		*l = SubtaskList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		*l = SubtaskList{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Task represents a unit of work tracked by the planner.
//
// Order defines the manual display sequence among all tasks. Values need not be
// contiguous at all times; a full reorder re-assigns 0..N-1. The column is named
// display_order to stay clear of the SQL keyword.
type Task struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description,omitempty"`
	Category    Category    `json:"category" gorm:"default:personal"`
	Priority    Priority    `json:"priority" gorm:"default:medium"`
	Status      TaskStatus  `json:"status" gorm:"default:pending;index"`
	DueDate     *time.Time  `json:"dueDate,omitempty"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	Recurring   Recurrence  `json:"recurring" gorm:"default:none"`
	Subtasks    SubtaskList `json:"subtasks" gorm:"type:text"`
	Order       int         `json:"order" gorm:"column:display_order;not null;default:0"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
