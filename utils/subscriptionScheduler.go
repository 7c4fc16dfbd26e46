package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"smartlearn/database"
	"smartlearn/models"
)

// InitializeSubscriptionScheduler sets up the subscription expiry scheduler.
// The sweep only sends emails; access control never depends on it and always
// re-evaluates entitlement from the subscription row at request time.
func InitializeSubscriptionScheduler() {
	log.Println("[SUBSCRIPTION-SCHEDULER] Initializing subscription scheduler...")

	c := cron.New()

	// Run daily at 9 AM to notify expiring and expired subscriptions
	c.AddFunc("0 9 * * *", func() {
		log.Println("[SUBSCRIPTION-SCHEDULER] Running daily subscription check...")
		ProcessExpiringSubscriptions()
		ProcessExpiredSubscriptions()
	})

	c.Start()
	log.Println("[SUBSCRIPTION-SCHEDULER] Subscription scheduler started - runs daily at 9 AM")
}

// ProcessExpiringSubscriptions sends reminder emails for plans expiring in 2 days
func ProcessExpiringSubscriptions() {
	db := database.Database.Db
	now := time.Now()
	twoDaysFromNow := now.AddDate(0, 0, 2)

	var expiring []models.Subscription
	if err := db.
		Where("plan <> ? AND reminder_sent = false AND is_deleted = false", models.PlanNone).
		Where("end_date BETWEEN ? AND ?", now, twoDaysFromNow).
		Find(&expiring).Error; err != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching expiring subscriptions: %v", err)
		return
	}

	log.Printf("[SUBSCRIPTION-SCHEDULER] Found %d subscriptions expiring soon", len(expiring))

	for _, sub := range expiring {
		var user models.User
		if err := db.Where("id = ?", sub.UserID).First(&user).Error; err != nil {
			log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching user %d: %v", sub.UserID, err)
			continue
		}

		SendSubscriptionExpiryReminder(user.Email, user.Name, string(sub.Plan), sub.EndDate)

		db.Model(&sub).Update("reminder_sent", true)
		log.Printf("[SUBSCRIPTION-SCHEDULER] Sent expiry reminder for subscription %d to %s", sub.ID, user.Email)
	}
}

// ProcessExpiredSubscriptions notifies holders whose plan window has passed.
// Expiry itself is derived from end_date on every access check, so nothing
// about the plan is mutated here.
func ProcessExpiredSubscriptions() {
	db := database.Database.Db
	now := time.Now()

	var expired []models.Subscription
	if err := db.
		Where("plan <> ? AND expiry_notified = false AND is_deleted = false", models.PlanNone).
		Where("end_date < ?", now).
		Find(&expired).Error; err != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching expired subscriptions: %v", err)
		return
	}

	for _, sub := range expired {
		var user models.User
		if err := db.Where("id = ?", sub.UserID).First(&user).Error; err != nil {
			continue
		}

		SendSubscriptionExpiredEmail(user.Email, user.Name, string(sub.Plan))

		db.Model(&sub).Update("expiry_notified", true)
	}

	if len(expired) > 0 {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Notified %d expired subscriptions", len(expired))
	}
}
