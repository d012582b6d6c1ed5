package services

import (
	"testing"

	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.Admin{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.BlogPost{},
		&entity.Testimonial{},
		&entity.GalleryImage{},
		&entity.ContactMessage{},
		&entity.Order{},
		&entity.Promotion{},
		&entity.Setting{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
