package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name         string `gorm:"size:255;not null" json:"name"`
	Slug         string `gorm:"size:255;uniqueIndex" json:"slug"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`

	MenuItems []MenuItem `json:"-"`
}
