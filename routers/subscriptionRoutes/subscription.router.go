package subscriptionRoutes

import (
	subscriptionControllers "smartlearn/controllers/subscription"
	"smartlearn/middleware"
	subscriptionValidators "smartlearn/validators/subscription"

	"github.com/gofiber/fiber/v2"
)

func SetupSubscriptionRoutes(app *fiber.App) {
	subscriptionGroup := app.Group("/subscriptions", middleware.JWTMiddleware)

	subscriptionGroup.Post("/purchase", subscriptionValidators.PurchasePlan(), subscriptionControllers.PurchasePlan)
	subscriptionGroup.Get("/me", subscriptionControllers.MySubscription)
	subscriptionGroup.Post("/live-class/topup", subscriptionValidators.LiveClassTopup(), subscriptionControllers.PurchaseLiveClassAccess)
}
