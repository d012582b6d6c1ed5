package repository

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) FindAll() ([]entity.Setting, error) {
	var settings []entity.Setting
	err := r.DB.Find(&settings).Error
	return settings, err
}

// UpsertBatch writes the whole batch, inserting new keys and overwriting
// existing values.
func (r *SettingRepository) UpsertBatch(settings []entity.Setting) error {
	if len(settings) == 0 {
		return nil
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&settings).Error
}
