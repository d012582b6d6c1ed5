package services

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
	"github.com/tsionbantegize16/woinucoffee-web-design/utils"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.FindAll()
}

func (s *CategoryService) ListActive() ([]entity.Category, error) {
	return s.Repo.FindActive()
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	return s.Repo.FindByID(id)
}

// Create validates the draft and derives the slug from the name at save time.
func (s *CategoryService) Create(category *entity.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	category.Slug = utils.Slugify(category.Name)
	return s.Repo.Create(category)
}

// Update saves the full field set, recomputing the slug from the new name.
func (s *CategoryService) Update(id uint, category *entity.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	fields := map[string]any{
		"name":          category.Name,
		"slug":          utils.Slugify(category.Name),
		"description":   category.Description,
		"display_order": category.DisplayOrder,
		"is_active":     category.IsActive,
	}
	return s.Repo.Update(id, fields)
}

func (s *CategoryService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
