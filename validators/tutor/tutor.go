package tutorValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartlearn/middleware"
)

// AskRequest is stored in c.Locals("validatedAsk")
type AskRequest struct {
	Question string `json:"question"`
}

// Ask validates a tutor question
func Ask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AskRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question is required!"
		}
		if len(reqData.Question) > 2000 {
			errors["question"] = "Question is too long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAsk", reqData)
		return c.Next()
	}
}
