package tutorRoutes

import (
	tutorControllers "smartlearn/controllers/tutor"
	"smartlearn/middleware"
	tutorValidators "smartlearn/validators/tutor"

	"github.com/gofiber/fiber/v2"
)

func SetupTutorRoutes(app *fiber.App) {
	tutorGroup := app.Group("/tutor", middleware.JWTMiddleware)

	tutorGroup.Post("/ask", tutorValidators.Ask(), tutorControllers.Ask)
}
