package ledgerController

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"smartlearn/database"
	"smartlearn/middleware"
	"smartlearn/models"
	"smartlearn/services"
	"smartlearn/utils"
	ledgerValidator "smartlearn/validators/ledger"
)

// loadLedger pulls the full payment and withdrawal record sets. Totals are
// always recomputed from these, never read from a counter.
func loadLedger(c *fiber.Ctx) ([]models.PaymentRecord, []models.Withdrawal, error) {
	db := database.Database.Db

	var payments []models.PaymentRecord
	if err := db.Where("is_deleted = false").Find(&payments).Error; err != nil {
		return nil, nil, err
	}

	var withdrawals []models.Withdrawal
	if err := db.Where("is_deleted = false").Find(&withdrawals).Error; err != nil {
		return nil, nil, err
	}

	return payments, withdrawals, nil
}

// GetEarnings returns the platform ledger summary
func GetEarnings(c *fiber.Ctx) error {
	payments, withdrawals, err := loadLedger(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ledger!", nil)
	}

	summary := services.SummarizeLedger(payments, withdrawals)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earnings fetched!", fiber.Map{
		"totalRevenue":     summary.TotalRevenue,
		"totalWithdrawn":   summary.TotalWithdrawn,
		"availableBalance": summary.AvailableBalance,
		"paymentCount":     len(payments),
		"withdrawalCount":  len(withdrawals),
	})
}

// ListPayments returns all payment records, newest first
func ListPayments(c *fiber.Ctx) error {
	var payments []models.PaymentRecord
	if err := database.Database.Db.
		Where("is_deleted = false").
		Preload("User").
		Order("paid_at DESC").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	for i := range payments {
		payments[i].User.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched!", payments)
}

// RequestWithdrawal moves money out of the platform balance. The request is
// checked against a snapshot taken in the same call; a rejected request
// creates no record.
func RequestWithdrawal(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedWithdraw").(*ledgerValidator.WithdrawRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	payments, withdrawals, err := loadLedger(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ledger!", nil)
	}

	summary := services.SummarizeLedger(payments, withdrawals)

	if err := services.ValidateWithdrawalAmount(summary, reqData.Amount); err != nil {
		if errors.Is(err, services.ErrInsufficientBalance) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Withdrawal amount exceeds available balance!", fiber.Map{
				"availableBalance": summary.AvailableBalance,
			})
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Withdrawal amount must be greater than 0!", nil)
	}

	withdrawal := models.Withdrawal{
		Amount:      reqData.Amount,
		Method:      reqData.Method,
		PhoneNumber: reqData.PhoneNumber,
		BankName:    reqData.BankName,
		AccountNo:   reqData.AccountNo,
		Reference:   utils.GeneratePaymentRef(),
		RequestedBy: userId,
		RequestedAt: time.Now(),
	}

	if err := database.Database.Db.Create(&withdrawal).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record withdrawal!", nil)
	}

	utils.SendWithdrawalEmail(user.Email, user.Name, withdrawal.Amount, withdrawal.Method)

	remaining := summary.AvailableBalance - int64(withdrawal.Amount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal recorded!", fiber.Map{
		"withdrawal":       withdrawal,
		"availableBalance": remaining,
	})
}

// ListWithdrawals returns all withdrawal records, newest first
func ListWithdrawals(c *fiber.Ctx) error {
	var withdrawals []models.Withdrawal
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("requested_at DESC").Find(&withdrawals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch withdrawals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawals fetched!", withdrawals)
}
