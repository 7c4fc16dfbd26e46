package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment methods
const (
	MethodMTNMoMo      = "MTN_MOMO"
	MethodOrangeMoney  = "ORANGE_MONEY"
	MethodBankTransfer = "BANK_TRANSFER"
)

// Purchase kinds
const (
	PurchasePlan      = "PLAN"
	PurchaseBook      = "BOOK"
	PurchaseLiveClass = "LIVE_CLASS"
)

// PaymentRecord is one incoming payment. Records are append-only and never
// updated after creation.
type PaymentRecord struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Amount    uint      `gorm:"not null" json:"amount"`
	Method    string    `gorm:"type:varchar(30);not null" json:"method"`
	Kind      string    `gorm:"type:varchar(20);not null" json:"kind"` // PLAN, BOOK, LIVE_CLASS
	PlanType  Plan      `gorm:"type:varchar(20);default:'NONE'" json:"planType"`
	Reference string    `gorm:"size:64;index" json:"reference"`
	PaidAt    time.Time `gorm:"not null" json:"paidAt"`
	IsDeleted bool      `gorm:"default:false" json:"isDeleted"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PaymentRecord) TableName() string {
	return "payment_records"
}

// IsMobileMoneyMethod reports whether the method pays out to a phone number.
func IsMobileMoneyMethod(method string) bool {
	return method == MethodMTNMoMo || method == MethodOrangeMoney
}
