package repository

import (
	"time"

	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/gorm"
)

type PromotionRepository struct {
	DB *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

func (r *PromotionRepository) FindAll() ([]entity.Promotion, error) {
	var promotions []entity.Promotion
	err := r.DB.Order("created_at desc").Find(&promotions).Error
	return promotions, err
}

// FindActive returns promotions inside their window; open-ended windows count.
func (r *PromotionRepository) FindActive(now time.Time) ([]entity.Promotion, error) {
	var promotions []entity.Promotion
	err := r.DB.Where("is_active = ?", true).
		Where("start_at IS NULL OR start_at <= ?", now).
		Where("end_at IS NULL OR end_at >= ?", now).
		Order("created_at desc").
		Find(&promotions).Error
	return promotions, err
}

func (r *PromotionRepository) FindByID(id uint) (*entity.Promotion, error) {
	var promotion entity.Promotion
	err := r.DB.First(&promotion, id).Error
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *PromotionRepository) Create(promotion *entity.Promotion) error {
	return r.DB.Create(promotion).Error
}

func (r *PromotionRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Promotion{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *PromotionRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Promotion{}, id).Error
}
