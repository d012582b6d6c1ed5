package configs

import (
	"log"

	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the dashboard account on first boot.
func SeedAdmin(cfg *Config) error {
	var count int64
	if err := db.Model(&entity.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.Admin{
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Name:     "Administrator",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("seeded admin account:", admin.Email)
	return nil
}

// SeedSettings inserts the site settings keys the public pages read,
// leaving existing values untouched.
func SeedSettings() error {
	defaults := []entity.Setting{
		{Key: "site_title", Value: "Woinu Coffee"},
		{Key: "contact_email", Value: ""},
		{Key: "contact_phone", Value: ""},
		{Key: "address", Value: ""},
		{Key: "opening_hours", Value: ""},
	}
	for _, s := range defaults {
		var row entity.Setting
		if err := db.Where(entity.Setting{Key: s.Key}).
			Attrs(entity.Setting{Value: s.Value}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
