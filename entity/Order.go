package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses the kitchen works through. Membership is checked at the
// service layer; no transition graph is enforced.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Order struct {
	gorm.Model
	OrderNumber   string          `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	CustomerName  string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string          `gorm:"size:50" json:"customer_phone"`
	OrderType     string          `gorm:"size:50" json:"order_type"` // pickup / delivery / dine-in
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	Status        string          `gorm:"size:50;default:pending" json:"status"`
}
