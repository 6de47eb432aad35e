package usecase

import (
	"errors"
	"log"
	"strings"

	"taskflow-backend/internal/category/domain"
	"taskflow-backend/internal/category/repository"
)

// ErrInvalidCategory signals missing name or color on create.
var ErrInvalidCategory = errors.New("category name and color are required")

// CategoryUsecase defines the interface for category business logic
type CategoryUsecase interface {
	// GetCategories returns all categories
	GetCategories() ([]*domain.Category, error)

	// CreateCategory creates a category with the given name and color tag
	CreateCategory(name, color string) (*domain.Category, error)

	// SeedDefaults inserts the built-in categories when the table is empty
	SeedDefaults() error
}

type categoryUsecase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUsecase creates a new instance of categoryUsecase
func NewCategoryUsecase(categoryRepo repository.CategoryRepository) CategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo}
}

func (u *categoryUsecase) GetCategories() ([]*domain.Category, error) {
	return u.categoryRepo.FindAll()
}

func (u *categoryUsecase) CreateCategory(name, color string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	color = strings.TrimSpace(color)
	if name == "" || color == "" {
		return nil, ErrInvalidCategory
	}

	category := &domain.Category{Name: name, Color: color}
	if err := u.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// SeedDefaults mirrors the category tags tasks are created with.
func (u *categoryUsecase) SeedDefaults() error {
	count, err := u.categoryRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []domain.Category{
		{Name: "Work", Color: "blue"},
		{Name: "Personal", Color: "emerald"},
		{Name: "Study", Color: "purple"},
		{Name: "Other", Color: "gray"},
	}
	for i := range defaults {
		if err := u.categoryRepo.Create(&defaults[i]); err != nil {
			return err
		}
	}
	log.Printf("[CategoryUsecase] Seeded %d default categories", len(defaults))
	return nil
}
