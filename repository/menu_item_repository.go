package repository

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// FindAll returns the whole collection with the category name joined in,
// newest first.
func (r *MenuItemRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Preload("Category").
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindAvailable() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Preload("Category").
		Where("is_available = ?", true).
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindFeatured(limit int) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("is_featured = ? AND is_available = ?", true, true).
		Order("created_at desc").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.Preload("Category").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *MenuItemRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuItemRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&count).Error
	return count, err
}
