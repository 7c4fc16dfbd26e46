package bookRoutes

import (
	bookControllers "smartlearn/controllers/book"
	"smartlearn/middleware"
	"smartlearn/models"
	bookValidators "smartlearn/validators/book"

	"github.com/gofiber/fiber/v2"
)

func SetupBookRoutes(app *fiber.App) {
	bookGroup := app.Group("/books", middleware.JWTMiddleware)

	bookGroup.Get("/", bookControllers.ListBooks)
	bookGroup.Post("/", middleware.RequireRole(models.RoleTeacher, models.RoleOwner), bookValidators.CreateBook(), bookControllers.CreateBook)
	bookGroup.Post("/purchase", bookValidators.PurchaseBook(), bookControllers.PurchaseBook)
	bookGroup.Get("/mine", bookControllers.MyBooks)
	bookGroup.Get("/:id/read", bookControllers.ReadBook)
}
