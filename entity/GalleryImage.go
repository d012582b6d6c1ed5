package entity

import (
	"gorm.io/gorm"
)

type GalleryImage struct {
	gorm.Model
	Title        string `gorm:"size:255;not null" json:"title"`
	Description  string `json:"description"`
	Category     string `gorm:"size:100" json:"category"` // free-text tag
	ImageURL     string `json:"image_url"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
	Likes        int    `gorm:"default:0" json:"likes"`
}
