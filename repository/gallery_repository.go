package repository

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/gorm"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

func (r *GalleryRepository) FindAll() ([]entity.GalleryImage, error) {
	var images []entity.GalleryImage
	err := r.DB.Order("display_order asc").Find(&images).Error
	return images, err
}

func (r *GalleryRepository) FindActive() ([]entity.GalleryImage, error) {
	var images []entity.GalleryImage
	err := r.DB.Where("is_active = ?", true).
		Order("display_order asc").
		Find(&images).Error
	return images, err
}

func (r *GalleryRepository) FindByID(id uint) (*entity.GalleryImage, error) {
	var image entity.GalleryImage
	err := r.DB.First(&image, id).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *GalleryRepository) Create(image *entity.GalleryImage) error {
	return r.DB.Create(image).Error
}

func (r *GalleryRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.GalleryImage{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *GalleryRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.GalleryImage{}, id).Error
}

func (r *GalleryRepository) IncrementLikes(id uint) error {
	return r.DB.Model(&entity.GalleryImage{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1")).Error
}

// DecrementLikes floors the counter at zero.
func (r *GalleryRepository) DecrementLikes(id uint) error {
	return r.DB.Model(&entity.GalleryImage{}).
		Where("id = ? AND likes > 0", id).
		Update("likes", gorm.Expr("likes - 1")).Error
}
