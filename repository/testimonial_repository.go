package repository

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/gorm"
)

type TestimonialRepository struct {
	DB *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{DB: db}
}

func (r *TestimonialRepository) FindAll() ([]entity.Testimonial, error) {
	var testimonials []entity.Testimonial
	err := r.DB.Order("created_at desc").Find(&testimonials).Error
	return testimonials, err
}

func (r *TestimonialRepository) FindApproved(limit int) ([]entity.Testimonial, error) {
	var testimonials []entity.Testimonial
	q := r.DB.Where("is_approved = ?", true).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&testimonials).Error
	return testimonials, err
}

func (r *TestimonialRepository) FindByID(id uint) (*entity.Testimonial, error) {
	var testimonial entity.Testimonial
	err := r.DB.First(&testimonial, id).Error
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *TestimonialRepository) Create(testimonial *entity.Testimonial) error {
	return r.DB.Create(testimonial).Error
}

func (r *TestimonialRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Testimonial{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *TestimonialRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Testimonial{}, id).Error
}

// AverageRating recomputes the stat from stored rows; zero when empty.
func (r *TestimonialRepository) AverageRating() (float64, error) {
	var avg *float64
	err := r.DB.Model(&entity.Testimonial{}).
		Select("avg(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
