package configs

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	default:
		dial = sqlite.Open(cfg.DBSource)
	}

	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Admin{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.BlogPost{},
		&entity.Testimonial{},
		&entity.GalleryImage{},
		&entity.ContactMessage{},
		&entity.Order{},
		&entity.Promotion{},
		&entity.Setting{},
	)
}
