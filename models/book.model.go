package models

import (
	"time"

	"gorm.io/gorm"
)

// Book is a bookstore item.
type Book struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Author      string `gorm:"default:''" json:"author"`
	Description string `gorm:"type:text" json:"description"`
	CoverImage  string `gorm:"default:''" json:"coverImage"`
	Price       uint   `gorm:"not null" json:"price"`
	FileURL     string `gorm:"default:''" json:"fileUrl"`
	IsDeleted   bool   `gorm:"default:false" json:"isDeleted"`
}

// BookPurchase records one user buying one book. Buying an already-owned
// book is rejected as a no-op before a second row is created.
type BookPurchase struct {
	gorm.Model
	UserID      uint      `gorm:"not null;index" json:"userId"`
	BookID      uint      `gorm:"not null;index" json:"bookId"`
	PaymentRef  string    `gorm:"size:64" json:"paymentRef"`
	PurchasedAt time.Time `gorm:"not null" json:"purchasedAt"`
	IsDeleted   bool      `gorm:"default:false" json:"isDeleted"`

	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (BookPurchase) TableName() string {
	return "book_purchases"
}
