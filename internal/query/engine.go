// Package query derives filtered, sorted task views and aggregate statistics.
// Everything here is pure: callers pass the full task set and the current time,
// and bad input degrades to empty results rather than errors.
package query

import (
	"sort"
	"strings"
	"time"

	"taskflow-backend/internal/task/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter narrows the visible task set.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterOverdue   Filter = "overdue"
	FilterToday     Filter = "today"
	FilterThisWeek  Filter = "this_week"
)

// Sort selects the ordering applied after filtering. Exactly one is active.
type Sort string

const (
	SortOrder        Sort = "order"
	SortCreated      Sort = "created"
	SortPriority     Sort = "priority"
	SortDueDate      Sort = "dueDate"
	SortAlphabetical Sort = "alphabetical"
)

// Params is the user-chosen view state.
type Params struct {
	Search   string
	Category string
	Filter   Filter
	Sort     Sort
	Now      time.Time
}

// Stats aggregates over the unfiltered task set.
type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	Overdue    int `json:"overdue"`
	Percentage int `json:"percentage"`
}

var titleCollator = collate.New(language.English, collate.Loose)

// Apply filters then sorts the task set. Filters run in fixed order: free-text
// search, category, status filter. The input slice is not modified.
func Apply(tasks []*domain.Task, p Params) []*domain.Task {
	filtered := make([]*domain.Task, 0, len(tasks))

	search := strings.ToLower(strings.TrimSpace(p.Search))
	for _, t := range tasks {
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		if p.Category != "" && string(t.Category) != p.Category {
			continue
		}
		if !matchesFilter(t, p.Filter, p.Now) {
			continue
		}
		filtered = append(filtered, t)
	}

	sortTasks(filtered, p.Sort)
	return filtered
}

// Aggregate computes stats over the full task set, never the filtered view.
func Aggregate(tasks []*domain.Task, now time.Time) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == domain.TaskStatusCompleted {
			s.Completed++
		}
		if isOverdue(t, now) {
			s.Overdue++
		}
	}
	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.Percentage = int(float64(s.Completed)/float64(s.Total)*100 + 0.5)
	}
	return s
}

func matchesSearch(t *domain.Task, search string) bool {
	if strings.Contains(strings.ToLower(t.Title), search) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), search)
}

func matchesFilter(t *domain.Task, f Filter, now time.Time) bool {
	switch f {
	case FilterPending:
		return t.Status == domain.TaskStatusPending
	case FilterCompleted:
		return t.Status == domain.TaskStatusCompleted
	case FilterOverdue:
		return isOverdue(t, now)
	case FilterToday:
		return t.DueDate != nil && isSameDay(*t.DueDate, now)
	case FilterThisWeek:
		return t.DueDate != nil && isSameWeek(*t.DueDate, now)
	default:
		return true
	}
}

func isOverdue(t *domain.Task, now time.Time) bool {
	return t.Status == domain.TaskStatusPending && t.DueDate != nil && t.DueDate.Before(now)
}

func sortTasks(tasks []*domain.Task, s Sort) {
	switch s {
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
		})
	case SortDueDate:
		// Tasks without a due date sort after every dated task; dateless
		// pairs keep their relative order.
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	case SortAlphabetical:
		sort.SliceStable(tasks, func(i, j int) bool {
			return titleCollator.CompareString(tasks[i].Title, tasks[j].Title) < 0
		})
	case SortCreated:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	default:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Order < tasks[j].Order
		})
	}
}

func isSameDay(t, ref time.Time) bool {
	y1, m1, d1 := t.Local().Date()
	y2, m2, d2 := ref.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isSameWeek treats weeks as starting on Sunday, local time.
func isSameWeek(t, ref time.Time) bool {
	start := startOfWeek(ref)
	end := start.AddDate(0, 0, 7)
	local := t.Local()
	return !local.Before(start) && local.Before(end)
}

func startOfWeek(ref time.Time) time.Time {
	local := ref.Local()
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}
