package usecase

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	activitydomain "taskflow-backend/internal/activity/domain"
	activityrepo "taskflow-backend/internal/activity/repository"
	"taskflow-backend/internal/task/domain"
	"taskflow-backend/internal/task/dto"
	"taskflow-backend/internal/task/repository"

	"github.com/google/uuid"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo     repository.TaskRepository
	activityRepo activityrepo.ActivityRepository

	// mu serializes mutating operations: display-order assignment reads the
	// task count before inserting, and activity truncation must not interleave.
	mu sync.Mutex
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, activityRepo activityrepo.ActivityRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo:     taskRepo,
		activityRepo: activityRepo,
	}
}

func (u *taskUsecase) CreateTask(req dto.CreateTaskRequest) (*domain.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, newValidationError("title", "Title is required")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	count, err := u.taskRepo.Count()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Category:    parseCategory(req.Category),
		Priority:    parsePriority(req.Priority),
		Status:      domain.TaskStatusPending,
		Recurring:   parseRecurrence(req.Recurring),
		Subtasks:    domain.SubtaskList{},
		Order:       int(count),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		if t, err := time.Parse(time.RFC3339, *req.DueDate); err == nil {
			task.DueDate = &t
		}
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	u.record(activitydomain.ActionCreated, task.Title,
		fmt.Sprintf("Task created with %s priority", task.Priority))

	return task, nil
}

func (u *taskUsecase) GetTasks() ([]*domain.Task, error) {
	return u.taskRepo.FindAll()
}

func (u *taskUsecase) GetTask(id string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(id string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	task, err := u.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, newValidationError("title", "Title is required")
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Category != nil {
		task.Category = domain.Category(*req.Category)
	}
	if req.Priority != nil {
		task.Priority = domain.Priority(*req.Priority)
	}
	if req.Recurring != nil {
		task.Recurring = domain.Recurrence(*req.Recurring)
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else if t, err := time.Parse(time.RFC3339, *req.DueDate); err == nil {
			task.DueDate = &t
		}
	}

	now := time.Now()
	action := activitydomain.ActionUpdated

	// completedAt tracks status transitions: set exactly when status becomes
	// completed, cleared when it moves away, untouched when status is absent
	// from the partial update.
	if req.Status != nil {
		wasCompleted := task.Status == domain.TaskStatusCompleted
		task.Status = domain.TaskStatus(*req.Status)
		switch {
		case task.Status == domain.TaskStatusCompleted && !wasCompleted:
			task.CompletedAt = &now
			action = activitydomain.ActionCompleted
		case task.Status != domain.TaskStatusCompleted:
			task.CompletedAt = nil
		}
	}

	task.UpdatedAt = now
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	u.record(action, task.Title, "")

	return task, nil
}

func (u *taskUsecase) DeleteTask(id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	task, err := u.taskRepo.FindByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	// Sibling order values are not backfilled; the gap persists until the
	// next explicit reorder.
	if err := u.taskRepo.Delete(id); err != nil {
		return err
	}

	u.record(activitydomain.ActionDeleted, task.Title, "")

	return nil
}

func (u *taskUsecase) ReorderTasks(ids []string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.taskRepo.UpdateOrders(ids, time.Now())
}

func (u *taskUsecase) MoveTask(source, destination int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tasks, err := u.taskRepo.FindAll()
	if err != nil {
		return err
	}
	moved := domain.Move(tasks, source, destination)
	if moved == nil {
		return nil
	}
	return u.taskRepo.UpdateOrders(domain.IDs(moved), time.Now())
}

func (u *taskUsecase) AddSubtask(taskID, title string) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, newValidationError("title", "Subtask title is required")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.Subtasks = append(task.Subtasks, domain.Subtask{
		ID:        uuid.New().String(),
		Title:     title,
		Completed: false,
		CreatedAt: time.Now(),
	})
	task.UpdatedAt = time.Now()

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) ToggleSubtask(taskID, subtaskID string) (*domain.Task, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	for i := range task.Subtasks {
		if task.Subtasks[i].ID == subtaskID {
			task.Subtasks[i].Completed = !task.Subtasks[i].Completed
			break
		}
	}
	task.UpdatedAt = time.Now()

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) ArchiveCompletedBefore(cutoff time.Time) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	tasks, err := u.taskRepo.FindCompletedBefore(cutoff)
	if err != nil {
		return 0, err
	}

	archived := 0
	for _, task := range tasks {
		task.Status = domain.TaskStatusArchived
		task.CompletedAt = nil
		task.UpdatedAt = time.Now()
		if err := u.taskRepo.Update(task); err != nil {
			return archived, err
		}
		u.record(activitydomain.ActionArchived, task.Title, "Archived automatically")
		archived++
	}
	return archived, nil
}

// record appends to the activity log; a failed append never fails the mutation
// that triggered it.
func (u *taskUsecase) record(action activitydomain.Action, title, details string) {
	if err := u.activityRepo.Record(action, title, details); err != nil {
		log.Printf("[TaskUsecase] Failed to record %s activity: %v", action, err)
	}
}

func parsePriority(p string) domain.Priority {
	switch p {
	case "high":
		return domain.PriorityHigh
	case "low":
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

func parseCategory(c string) domain.Category {
	switch c {
	case "work":
		return domain.CategoryWork
	case "study":
		return domain.CategoryStudy
	case "other":
		return domain.CategoryOther
	default:
		return domain.CategoryPersonal
	}
}

func parseRecurrence(r string) domain.Recurrence {
	switch r {
	case "daily":
		return domain.RecurrenceDaily
	case "weekly":
		return domain.RecurrenceWeekly
	case "monthly":
		return domain.RecurrenceMonthly
	default:
		return domain.RecurrenceNone
	}
}
