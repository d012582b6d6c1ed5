package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Promotion struct {
	gorm.Model
	PromoCode   string          `gorm:"size:50;uniqueIndex;not null" json:"promo_code"`
	PromoDetail string          `json:"promo_detail"`
	Value       uint            `json:"value"` // percent off
	MinOrder    decimal.Decimal `gorm:"type:decimal(10,2)" json:"min_order"`
	IsActive    bool            `json:"is_active"`
	StartAt     *time.Time      `json:"start_at,omitempty"`
	EndAt       *time.Time      `json:"end_at,omitempty"`
}
