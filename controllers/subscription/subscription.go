package subscriptionController

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"smartlearn/database"
	"smartlearn/middleware"
	"smartlearn/models"
	"smartlearn/services"
	"smartlearn/utils"
	subscriptionValidator "smartlearn/validators/subscription"
)

// PurchasePlan records a payment and replaces the user's subscription with a
// fresh row covering the plan's access window. Renewal never mutates the old
// row.
func PurchasePlan(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedPurchasePlan").(*subscriptionValidator.PurchasePlanRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	plan := models.Plan(reqData.Plan)
	duration, _ := plan.Duration()

	db := database.Database.Db
	now := time.Now()
	ref := utils.GeneratePaymentRef()

	payment := models.PaymentRecord{
		UserID:    userId,
		Amount:    plan.Price(),
		Method:    reqData.Method,
		Kind:      models.PurchasePlan,
		PlanType:  plan,
		Reference: ref,
		PaidAt:    now,
	}

	subscription := models.Subscription{
		UserID:     userId,
		Plan:       plan,
		StartDate:  now,
		EndDate:    now.Add(duration),
		PaymentRef: ref,
	}

	// Payment record and subscription land together or not at all
	tx := db.Begin()
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}
	if err := tx.Create(&subscription).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subscription!", nil)
	}
	tx.Commit()

	utils.SendSubscriptionEmail(user.Email, user.Name, string(plan), subscription.EndDate)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan purchased successfully!", fiber.Map{
		"subscription": subscription,
		"payment": fiber.Map{
			"reference": payment.Reference,
			"amount":    payment.Amount,
			"method":    payment.Method,
		},
	})
}

// MySubscription returns the freshly evaluated entitlement for the user
func MySubscription(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	sub, err := models.LatestSubscription(database.Database.Db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscription!", nil)
	}

	entitlement := services.EvaluateEntitlement(sub, time.Now())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription status fetched!", fiber.Map{
		"entitlement":  entitlement,
		"subscription": sub,
	})
}

// PurchaseLiveClassAccess buys a one-time token for a single live class,
// outside the holder's plan tier. The new subscription row carries forward
// the current plan window so an active plan is not lost by the topup.
func PurchaseLiveClassAccess(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedLiveClassTopup").(*subscriptionValidator.LiveClassTopupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var liveClass models.LiveClass
	if err := db.Where("id = ? AND is_deleted = false", reqData.LiveClassID).First(&liveClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Live class not found!", nil)
	}

	current, err := models.LatestSubscription(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscription!", nil)
	}

	// Already unlocked: active Monthly plan or an existing token for this class
	if services.CanJoinLiveClass(current, liveClass.ID, time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You already have access to this live class!", nil)
	}

	now := time.Now()
	ref := utils.GeneratePaymentRef()

	payment := models.PaymentRecord{
		UserID:    userId,
		Amount:    liveClass.TopupPrice,
		Method:    reqData.Method,
		Kind:      models.PurchaseLiveClass,
		Reference: ref,
		PaidAt:    now,
	}

	subscription := models.Subscription{
		UserID:         userId,
		Plan:           models.PlanNone,
		StartDate:      now,
		EndDate:        now,
		LiveClassID:    &liveClass.ID,
		LiveClassToken: utils.GenerateAccessToken(),
		PaymentRef:     ref,
	}
	// Carry the plan window forward so the topup does not downgrade access
	if current != nil {
		subscription.Plan = current.Plan
		subscription.StartDate = current.StartDate
		subscription.EndDate = current.EndDate
	}

	tx := db.Begin()
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}
	if err := tx.Create(&subscription).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant access!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live class access purchased!", fiber.Map{
		"liveClassId": liveClass.ID,
		"accessToken": subscription.LiveClassToken,
		"payment": fiber.Map{
			"reference": payment.Reference,
			"amount":    payment.Amount,
			"method":    payment.Method,
		},
	})
}
