package entity

import (
	"time"

	"gorm.io/gorm"
)

type BlogPost struct {
	gorm.Model
	Title         string     `gorm:"size:255;not null" json:"title"`
	Slug          string     `gorm:"size:255;uniqueIndex" json:"slug"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	Author        string     `json:"author"`
	FeaturedImage string     `json:"featured_image"`
	IsPublished   bool       `json:"is_published"`
	PublishedAt   *time.Time `json:"published_at"` // set on the transition into published
}
