package models

import (
	"time"

	"gorm.io/gorm"
)

// Withdrawal is one payout of platform earnings. Exactly one detail set is
// populated, selected by Method: PhoneNumber for mobile-money methods,
// BankName+AccountNo for bank transfers. Records are append-only.
type Withdrawal struct {
	gorm.Model
	Amount      uint      `gorm:"not null" json:"amount"`
	Method      string    `gorm:"type:varchar(30);not null" json:"method"`
	PhoneNumber string    `gorm:"size:20" json:"phoneNumber,omitempty"`
	BankName    string    `gorm:"size:100" json:"bankName,omitempty"`
	AccountNo   string    `gorm:"size:50" json:"accountNo,omitempty"`
	Reference   string    `gorm:"size:64;index" json:"reference"`
	RequestedBy uint      `gorm:"not null" json:"requestedBy"`
	RequestedAt time.Time `gorm:"not null" json:"requestedAt"`
	IsDeleted   bool      `gorm:"default:false" json:"isDeleted"`
}

func (Withdrawal) TableName() string {
	return "withdrawals"
}
