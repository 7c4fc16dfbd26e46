package authRoutes

import (
	authControllers "smartlearn/controllers/auth"
	"smartlearn/middleware"
	authValidators "smartlearn/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/send/otp", middleware.JWTMiddleware, authControllers.SendOTP)
	authGroup.Patch("/verify/otp", authValidators.VerifyOTP(), authControllers.VerifyOTP)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
}
