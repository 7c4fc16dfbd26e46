package ledgerValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"smartlearn/middleware"
	"smartlearn/models"
)

var validate = validator.New()

// WithdrawRequest is stored in c.Locals("validatedWithdraw"). Exactly one
// detail set must be populated, selected by Method: PhoneNumber for
// mobile-money methods, BankName+AccountNo for bank transfers.
type WithdrawRequest struct {
	Amount      uint   `json:"amount" validate:"required,gt=0"`
	Method      string `json:"method" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	BankName    string `json:"bankName"`
	AccountNo   string `json:"accountNo"`
}

// Withdraw validates a withdrawal request. Balance checks happen later in
// the controller against a fresh ledger snapshot; this stage only rejects
// malformed requests so an invalid one never reaches the ledger.
func Withdraw() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(WithdrawRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Amount":
					errors["amount"] = "Amount must be greater than 0!"
				case "Method":
					errors["method"] = "Withdrawal method is required!"
				}
			}
		}

		reqData.Method = strings.ToUpper(strings.TrimSpace(reqData.Method))
		switch {
		case models.IsMobileMoneyMethod(reqData.Method):
			if strings.TrimSpace(reqData.PhoneNumber) == "" {
				errors["phoneNumber"] = "Phone number is required for mobile money withdrawals!"
			}
			reqData.BankName = ""
			reqData.AccountNo = ""
		case reqData.Method == models.MethodBankTransfer:
			if strings.TrimSpace(reqData.BankName) == "" {
				errors["bankName"] = "Bank name is required for bank transfers!"
			}
			if strings.TrimSpace(reqData.AccountNo) == "" {
				errors["accountNo"] = "Account number is required for bank transfers!"
			}
			reqData.PhoneNumber = ""
		case reqData.Method != "":
			errors["method"] = "Method must be MTN_MOMO, ORANGE_MONEY or BANK_TRANSFER!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWithdraw", reqData)
		return c.Next()
	}
}
