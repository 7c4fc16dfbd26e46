package services

import (
	"testing"
	"time"

	"smartlearn/models"
)

func TestEvaluateEntitlement(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	monthly := &models.Subscription{
		UserID:    1,
		Plan:      models.PlanMonthly,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 30),
	}
	daily := &models.Subscription{
		UserID:    1,
		Plan:      models.PlanDaily,
		StartDate: start,
		EndDate:   start.Add(24 * time.Hour),
	}
	none := &models.Subscription{UserID: 1, Plan: models.PlanNone}

	tests := []struct {
		name       string
		sub        *models.Subscription
		now        time.Time
		wantStatus EntitlementStatus
		wantPlan   models.Plan
	}{
		{name: "no subscription ever", sub: nil, now: start, wantStatus: EntitlementNone, wantPlan: models.PlanNone},
		{name: "plan none", sub: none, now: start, wantStatus: EntitlementNone, wantPlan: models.PlanNone},
		{name: "monthly mid-window", sub: monthly, now: start.AddDate(0, 0, 15), wantStatus: EntitlementActive, wantPlan: models.PlanMonthly},
		{name: "monthly past window", sub: monthly, now: start.AddDate(0, 0, 31), wantStatus: EntitlementExpired, wantPlan: models.PlanMonthly},
		{name: "exactly at end date is expired", sub: monthly, now: monthly.EndDate, wantStatus: EntitlementExpired, wantPlan: models.PlanMonthly},
		{name: "one nanosecond before end", sub: monthly, now: monthly.EndDate.Add(-time.Nanosecond), wantStatus: EntitlementActive, wantPlan: models.PlanMonthly},
		{name: "daily active", sub: daily, now: start.Add(23 * time.Hour), wantStatus: EntitlementActive, wantPlan: models.PlanDaily},
		{name: "daily expired", sub: daily, now: start.Add(25 * time.Hour), wantStatus: EntitlementExpired, wantPlan: models.PlanDaily},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateEntitlement(tt.sub, tt.now)
			if got.Status != tt.wantStatus {
				t.Errorf("EvaluateEntitlement() status = %v, want %v", got.Status, tt.wantStatus)
			}
			if got.Plan != tt.wantPlan {
				t.Errorf("EvaluateEntitlement() plan = %v, want %v", got.Plan, tt.wantPlan)
			}
		})
	}
}

func TestEvaluateEntitlementIgnoresClock(t *testing.T) {
	// A NONE result must not depend on now at all.
	for _, now := range []time.Time{time.Unix(0, 0), time.Now(), time.Now().AddDate(100, 0, 0)} {
		if got := EvaluateEntitlement(nil, now); got.Status != EntitlementNone {
			t.Fatalf("nil subscription at %v: status = %v, want NONE", now, got.Status)
		}
	}
}

func TestCanJoinLiveClass(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 5)
	classID := uint(42)
	otherID := uint(7)

	activeMonthly := &models.Subscription{Plan: models.PlanMonthly, StartDate: start, EndDate: start.AddDate(0, 0, 30)}
	expiredMonthly := &models.Subscription{Plan: models.PlanMonthly, StartDate: start.AddDate(0, -2, 0), EndDate: start.AddDate(0, -1, 0)}
	activeWeekly := &models.Subscription{Plan: models.PlanWeekly, StartDate: start, EndDate: start.AddDate(0, 0, 7)}
	topupOnly := &models.Subscription{Plan: models.PlanNone, LiveClassID: &classID}
	expiredWithTopup := &models.Subscription{Plan: models.PlanMonthly, StartDate: start.AddDate(0, -2, 0), EndDate: start.AddDate(0, -1, 0), LiveClassID: &classID}

	tests := []struct {
		name    string
		sub     *models.Subscription
		classID uint
		want    bool
	}{
		{name: "no subscription", sub: nil, classID: classID, want: false},
		{name: "active monthly plan", sub: activeMonthly, classID: classID, want: true},
		{name: "expired monthly plan", sub: expiredMonthly, classID: classID, want: false},
		{name: "weekly plan does not unlock", sub: activeWeekly, classID: classID, want: false},
		{name: "topup token for this class", sub: topupOnly, classID: classID, want: true},
		{name: "topup token for another class", sub: topupOnly, classID: otherID, want: false},
		{name: "expired plan but topup for this class", sub: expiredWithTopup, classID: classID, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanJoinLiveClass(tt.sub, tt.classID, now); got != tt.want {
				t.Errorf("CanJoinLiveClass() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanDuration(t *testing.T) {
	tests := []struct {
		plan models.Plan
		want time.Duration
		ok   bool
	}{
		{models.PlanDaily, 24 * time.Hour, true},
		{models.PlanWeekly, 7 * 24 * time.Hour, true},
		{models.PlanMonthly, 30 * 24 * time.Hour, true},
		{models.PlanNone, 0, false},
		{models.Plan("YEARLY"), 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.plan.Duration()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Plan(%q).Duration() = (%v, %v), want (%v, %v)", tt.plan, got, ok, tt.want, tt.ok)
		}
	}
}
