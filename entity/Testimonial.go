package entity

import (
	"gorm.io/gorm"
)

type Testimonial struct {
	gorm.Model
	CustomerName  string `gorm:"size:255;not null" json:"customer_name"`
	Review        string `json:"review"`
	Rating        int    `gorm:"default:5" json:"rating"` // 1..5
	CustomerImage string `json:"customer_image"`
	IsApproved    bool   `json:"is_approved"`
}
