package repository

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/gorm"
)

type BlogRepository struct {
	DB *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

func (r *BlogRepository) FindAll() ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	err := r.DB.Order("created_at desc").Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) FindPublished() ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	err := r.DB.Where("is_published = ?", true).
		Order("published_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) FindPublishedBySlug(slug string) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := r.DB.Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) FindByID(id uint) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := r.DB.First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) Create(post *entity.BlogPost) error {
	return r.DB.Create(post).Error
}

func (r *BlogRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.BlogPost{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *BlogRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.BlogPost{}, id).Error
}
