package tutorController

import (
	"github.com/gofiber/fiber/v2"

	"smartlearn/database"
	"smartlearn/middleware"
	"smartlearn/models"
	"smartlearn/utils"
	tutorValidator "smartlearn/validators/tutor"
)

// Ask forwards a study question to the hosted model. A failed or
// misconfigured model yields the fixed fallback message, never an error.
func Ask(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedAsk").(*tutorValidator.AskRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	answer := utils.GenerateTutorReply(reqData.Question)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tutor replied!", fiber.Map{
		"question": reqData.Question,
		"answer":   answer,
	})
}
