package entity

import (
	"gorm.io/gorm"
)

type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Subject string `gorm:"size:255" json:"subject"`
	Message string `json:"message"`
	IsRead  bool   `json:"is_read"`
}
