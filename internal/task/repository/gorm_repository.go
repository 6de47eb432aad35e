package repository

import (
	"time"

	"taskflow-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Subtasks == nil {
		task.Subtasks = domain.SubtaskList{}
	}
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindAll() ([]*domain.Task, error) {
	tasks := []*domain.Task{}
	err := r.db.Order("display_order ASC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.Subtasks == nil {
			t.Subtasks = domain.SubtaskList{}
		}
	}
	return tasks, nil
}

func (r *gormTaskRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Task{}).Count(&n).Error
	return n, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	if task.Subtasks == nil {
		task.Subtasks = domain.SubtaskList{}
	}
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Delete(&domain.Task{}, "id = ?", id).Error
}

// UpdateOrders walks the id sequence and writes each position index into
// display_order. An update that matches no row affects nothing, which is how
// unknown ids end up silently skipped.
func (r *gormTaskRepository) UpdateOrders(ids []string, now time.Time) error {
	for index, id := range ids {
		err := r.db.Model(&domain.Task{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"display_order": index,
				"updated_at":    now,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *gormTaskRepository) FindCompletedBefore(cutoff time.Time) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("status = ? AND completed_at IS NOT NULL AND completed_at < ?",
		domain.TaskStatusCompleted, cutoff).Find(&tasks).Error
	return tasks, err
}
