package messageValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartlearn/middleware"
)

// SendMessageRequest is stored in c.Locals("validatedSendMessage")
type SendMessageRequest struct {
	RecipientID uint   `json:"recipientId"`
	Body        string `json:"body"`
}

// SendMessage validates a direct message
func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SendMessageRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.RecipientID == 0 {
			errors["recipientId"] = "Recipient is required!"
		}
		if strings.TrimSpace(reqData.Body) == "" {
			errors["body"] = "Message body cannot be empty!"
		}
		if len(reqData.Body) > 5000 {
			errors["body"] = "Message body is too long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSendMessage", reqData)
		return c.Next()
	}
}
