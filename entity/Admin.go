package entity

import (
	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
}
