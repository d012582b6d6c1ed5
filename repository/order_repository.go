package repository

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.DB.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Create(order *entity.Order) error {
	return r.DB.Create(order).Error
}

// UpdateStatus writes the status against the row id and reports how many
// rows matched, so the caller can tell a missing order from a no-op.
func (r *OrderRepository) UpdateStatus(id uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
