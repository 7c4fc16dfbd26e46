package models

import (
	"time"

	"gorm.io/gorm"
)

type OTP struct {
	gorm.Model
	UserID      uint      `gorm:"not null" json:"user_id"`
	Email       string    `gorm:"size:100;index" json:"email,omitempty"`
	Code        string    `gorm:"size:6;not null" json:"code"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	IsUsed      bool      `gorm:"default:false" json:"is_used"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
	IsDeleted   bool      `gorm:"default:false"`
}
