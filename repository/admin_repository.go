package repository

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByEmail(email string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.DB.Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByID(id uint) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.DB.First(&admin, id).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) UpdatePassword(id uint, hashed string) error {
	return r.DB.Model(&entity.Admin{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}
