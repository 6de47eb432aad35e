package repository

import "taskflow-backend/internal/activity/domain"

// MaxEntries bounds the retained log; the oldest rows are evicted first.
const MaxEntries = 100

// ActivityRepository is the append-and-read surface of the bounded lifecycle log.
type ActivityRepository interface {
	// Record appends an entry and evicts anything beyond the newest MaxEntries
	Record(action domain.Action, taskTitle, details string) error

	// List returns retained entries, most recent first
	List() ([]*domain.Entry, error)
}
