package subscriptionValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartlearn/middleware"
	"smartlearn/models"
)

// PurchasePlanRequest is stored in c.Locals("validatedPurchasePlan")
type PurchasePlanRequest struct {
	Plan   string `json:"plan"`
	Method string `json:"method"`
}

// PurchasePlan validates a plan purchase request
func PurchasePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PurchasePlanRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Plan = strings.ToUpper(strings.TrimSpace(reqData.Plan))
		if !models.Plan(reqData.Plan).IsValid() {
			errors["plan"] = "Plan must be DAILY, WEEKLY or MONTHLY!"
		}

		reqData.Method = strings.ToUpper(strings.TrimSpace(reqData.Method))
		switch reqData.Method {
		case models.MethodMTNMoMo, models.MethodOrangeMoney, models.MethodBankTransfer:
		default:
			errors["method"] = "Payment method must be MTN_MOMO, ORANGE_MONEY or BANK_TRANSFER!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPurchasePlan", reqData)
		return c.Next()
	}
}

// LiveClassTopupRequest is stored in c.Locals("validatedLiveClassTopup")
type LiveClassTopupRequest struct {
	LiveClassID uint   `json:"liveClassId"`
	Method      string `json:"method"`
}

// LiveClassTopup validates a one-time live class access purchase
func LiveClassTopup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LiveClassTopupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LiveClassID == 0 {
			errors["liveClassId"] = "Live class ID is required!"
		}

		reqData.Method = strings.ToUpper(strings.TrimSpace(reqData.Method))
		switch reqData.Method {
		case models.MethodMTNMoMo, models.MethodOrangeMoney, models.MethodBankTransfer:
		default:
			errors["method"] = "Payment method must be MTN_MOMO, ORANGE_MONEY or BANK_TRANSFER!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLiveClassTopup", reqData)
		return c.Next()
	}
}
