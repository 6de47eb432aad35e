package repository

import "taskflow-backend/internal/category/domain"

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// Create creates a new category
	Create(category *domain.Category) error

	// FindAll returns every category
	FindAll() ([]*domain.Category, error)

	// Count returns the number of stored categories
	Count() (int64, error)
}
