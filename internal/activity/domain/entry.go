package domain

import "time"

// Action identifies the lifecycle event an activity entry records.
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionCompleted Action = "completed"
	ActionDeleted   Action = "deleted"
	ActionArchived  Action = "archived"
)

// Entry is an immutable record of a lifecycle event on a task.
//
// TaskTitle is a denormalized snapshot, not a reference: entries must survive
// deletion of the task they describe. Seq is an internal insertion counter that
// gives the log a total order independent of timestamp resolution.
type Entry struct {
	Seq       int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	ID        string    `json:"id" gorm:"uniqueIndex;not null"`
	Action    Action    `json:"action" gorm:"not null"`
	TaskTitle string    `json:"taskTitle" gorm:"not null"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// TableName keeps the table name in line with the log it stores.
func (Entry) TableName() string {
	return "activity_entries"
}
