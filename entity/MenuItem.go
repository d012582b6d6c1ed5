package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"size:255;not null" json:"name"`
	Slug        string          `gorm:"size:255;uniqueIndex" json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL    string          `json:"image_url"`
	IsAvailable bool            `json:"is_available"`
	IsFeatured  bool            `json:"is_featured"`

	CategoryID uint      `json:"category_id"`
	Category   *Category `json:"category,omitempty"` // preload for the admin list
}
