package models

import (
	"time"

	"gorm.io/gorm"
)

// Plan is a subscription tier with a fixed access duration.
type Plan string

const (
	PlanNone    Plan = "NONE"
	PlanDaily   Plan = "DAILY"
	PlanWeekly  Plan = "WEEKLY"
	PlanMonthly Plan = "MONTHLY"
)

// Duration returns the access window for a plan. The second return value is
// false for PlanNone and unknown tags.
func (p Plan) Duration() (time.Duration, bool) {
	switch p {
	case PlanDaily:
		return 24 * time.Hour, true
	case PlanWeekly:
		return 7 * 24 * time.Hour, true
	case PlanMonthly:
		return 30 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Price returns the plan price in francs.
func (p Plan) Price() uint {
	switch p {
	case PlanDaily:
		return 500
	case PlanWeekly:
		return 2500
	case PlanMonthly:
		return 8000
	default:
		return 0
	}
}

// IsValid reports whether the tag names a purchasable plan.
func (p Plan) IsValid() bool {
	_, ok := p.Duration()
	return ok
}

// Subscription is one purchase of access. A renewal or a live-class topup
// always creates a new row; existing rows are never mutated in place, an
// expired row simply evaluates as inactive. ReminderSent/ExpiryNotified are
// scheduler bookkeeping only.
type Subscription struct {
	gorm.Model
	UserID         uint      `gorm:"not null;index" json:"userId"`
	Plan           Plan      `gorm:"type:varchar(20);not null;default:'NONE'" json:"plan"`
	StartDate      time.Time `gorm:"not null" json:"startDate"`
	EndDate        time.Time `gorm:"not null" json:"endDate"`
	LiveClassID    *uint     `gorm:"index" json:"liveClassId,omitempty"` // one-time topup target
	LiveClassToken string    `gorm:"size:64" json:"liveClassToken,omitempty"`
	PaymentRef     string    `gorm:"size:64" json:"paymentRef"`
	ReminderSent   bool      `gorm:"default:false" json:"reminderSent"`
	ExpiryNotified bool      `gorm:"default:false" json:"expiryNotified"`
	IsDeleted      bool      `gorm:"default:false" json:"isDeleted"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// LatestSubscription returns the user's most recent subscription row, or nil
// if the user never purchased one.
func LatestSubscription(db *gorm.DB, userID uint) (*Subscription, error) {
	var sub Subscription
	err := db.Where("user_id = ? AND is_deleted = false", userID).
		Order("created_at DESC").First(&sub).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}
