package repository

import (
	"time"

	"taskflow-backend/internal/activity/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormActivityRepository implements ActivityRepository using GORM
type gormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GORM-based ActivityRepository
func NewGormActivityRepository(db *gorm.DB) ActivityRepository {
	return &gormActivityRepository{db: db}
}

func (r *gormActivityRepository) Record(action domain.Action, taskTitle, details string) error {
	entry := &domain.Entry{
		ID:        uuid.New().String(),
		Action:    action,
		TaskTitle: taskTitle,
		Timestamp: time.Now(),
		Details:   details,
	}
	if err := r.db.Create(entry).Error; err != nil {
		return err
	}
	return r.trim()
}

// trim drops the oldest rows once the log exceeds MaxEntries.
func (r *gormActivityRepository) trim() error {
	var total int64
	if err := r.db.Model(&domain.Entry{}).Count(&total).Error; err != nil {
		return err
	}
	excess := int(total) - MaxEntries
	if excess <= 0 {
		return nil
	}

	var stale []int64
	err := r.db.Model(&domain.Entry{}).
		Order("seq ASC").
		Limit(excess).
		Pluck("seq", &stale).Error
	if err != nil {
		return err
	}
	return r.db.Delete(&domain.Entry{}, "seq IN ?", stale).Error
}

func (r *gormActivityRepository) List() ([]*domain.Entry, error) {
	entries := []*domain.Entry{}
	err := r.db.Order("seq DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
