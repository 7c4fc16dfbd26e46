package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is one direct message between two users. Conversations are derived
// by grouping messages per (sender, recipient) pair at read time.
type Message struct {
	gorm.Model
	SenderID    uint      `gorm:"not null;index" json:"senderId"`
	RecipientID uint      `gorm:"not null;index" json:"recipientId"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	IsRead      bool      `gorm:"default:false" json:"isRead"`
	SentAt      time.Time `gorm:"not null" json:"sentAt"`
	IsDeleted   bool      `gorm:"default:false" json:"isDeleted"`
}
