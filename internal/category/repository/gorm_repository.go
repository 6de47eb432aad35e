package repository

import (
	"time"

	"taskflow-backend/internal/category/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCategoryRepository implements CategoryRepository using GORM
type gormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository
func NewGormCategoryRepository(db *gorm.DB) CategoryRepository {
	return &gormCategoryRepository{db: db}
}

func (r *gormCategoryRepository) Create(category *domain.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	return r.db.Create(category).Error
}

func (r *gormCategoryRepository) FindAll() ([]*domain.Category, error) {
	categories := []*domain.Category{}
	err := r.db.Order("created_at ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *gormCategoryRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Category{}).Count(&n).Error
	return n, err
}
