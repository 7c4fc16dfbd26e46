package services

import (
	"time"

	"smartlearn/models"
)

// EntitlementStatus is the derived access state of an account.
type EntitlementStatus string

const (
	EntitlementNone    EntitlementStatus = "NONE"
	EntitlementActive  EntitlementStatus = "ACTIVE"
	EntitlementExpired EntitlementStatus = "EXPIRED"
)

// Entitlement is the result of evaluating a subscription at a point in time.
// Plan is retained on expiry so callers can render "renew your X plan".
type Entitlement struct {
	Status    EntitlementStatus `json:"status"`
	Plan      models.Plan       `json:"plan"`
	ExpiresAt *time.Time        `json:"expiresAt,omitempty"`
}

// EvaluateEntitlement decides current access rights from a subscription
// record. It is a pure function of (sub, now) and must be re-evaluated on
// every access check; the result is never cached since time advances
// independently of any mutation. A now equal to EndDate counts as expired.
func EvaluateEntitlement(sub *models.Subscription, now time.Time) Entitlement {
	if sub == nil || sub.Plan == models.PlanNone || !sub.Plan.IsValid() {
		return Entitlement{Status: EntitlementNone, Plan: models.PlanNone}
	}

	end := sub.EndDate
	if !now.Before(end) {
		return Entitlement{Status: EntitlementExpired, Plan: sub.Plan, ExpiresAt: &end}
	}
	return Entitlement{Status: EntitlementActive, Plan: sub.Plan, ExpiresAt: &end}
}

// IsActive is a convenience for content gating.
func (e Entitlement) IsActive() bool {
	return e.Status == EntitlementActive
}

// CanJoinLiveClass reports whether the subscription unlocks a specific live
// class: an active Monthly plan, or a one-time access token purchased for
// that class. The two paths are independent and OR-ed.
func CanJoinLiveClass(sub *models.Subscription, liveClassID uint, now time.Time) bool {
	if sub == nil {
		return false
	}
	ent := EvaluateEntitlement(sub, now)
	if ent.IsActive() && ent.Plan == models.PlanMonthly {
		return true
	}
	return sub.LiveClassID != nil && *sub.LiveClassID == liveClassID
}
