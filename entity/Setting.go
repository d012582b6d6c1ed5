package entity

import (
	"time"
)

// Setting is a plain key-value row; settings are upserted as a batch.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
