package repository

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.Order("display_order asc").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindActive() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.Where("is_active = ?", true).
		Order("display_order asc").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.DB.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Category{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Category{}, id).Error
}

func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).Count(&count).Error
	return count, err
}
