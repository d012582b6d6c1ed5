package repository

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) FindAll() ([]entity.ContactMessage, error) {
	var messages []entity.ContactMessage
	err := r.DB.Order("created_at desc").Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) FindRecent(limit int) ([]entity.ContactMessage, error) {
	var messages []entity.ContactMessage
	err := r.DB.Order("created_at desc").Limit(limit).Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) Create(message *entity.ContactMessage) error {
	return r.DB.Create(message).Error
}

func (r *MessageRepository) MarkRead(id uint) error {
	return r.DB.Model(&entity.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *MessageRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.ContactMessage{}, id).Error
}

func (r *MessageRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.ContactMessage{}).Count(&count).Error
	return count, err
}

func (r *MessageRepository) CountUnread() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.ContactMessage{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}
