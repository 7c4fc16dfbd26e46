package middleware

import (
	"github.com/gofiber/fiber/v2"

	"smartlearn/database"
	"smartlearn/models"
)

// RequireRole returns a middleware that allows only users holding one of the
// given roles. Runs after JWTMiddleware has set userId.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		var user models.User
		err := database.Database.Db.
			Where("id = ? AND role IN ? AND is_deleted = false", userID, roles).
			First(&user).Error
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		c.Locals("role", user.Role)
		return c.Next()
	}
}
