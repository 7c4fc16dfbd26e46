package messageRoutes

import (
	messageControllers "smartlearn/controllers/message"
	"smartlearn/middleware"
	messageValidators "smartlearn/validators/message"

	"github.com/gofiber/fiber/v2"
)

func SetupMessageRoutes(app *fiber.App) {
	messageGroup := app.Group("/messages", middleware.JWTMiddleware)

	messageGroup.Post("/", messageValidators.SendMessage(), messageControllers.SendMessage)
	messageGroup.Get("/conversations", messageControllers.GetConversations)
	messageGroup.Get("/thread/:peerId", messageControllers.GetThread)
}
