package ledgerRoutes

import (
	ledgerControllers "smartlearn/controllers/ledger"
	"smartlearn/middleware"
	"smartlearn/models"
	ledgerValidators "smartlearn/validators/ledger"

	"github.com/gofiber/fiber/v2"
)

// Ledger routes are owner-only: revenue figures and withdrawals never reach
// students or teachers.
func SetupLedgerRoutes(app *fiber.App) {
	ledgerGroup := app.Group("/ledger", middleware.JWTMiddleware, middleware.RequireRole(models.RoleOwner))

	ledgerGroup.Get("/earnings", ledgerControllers.GetEarnings)
	ledgerGroup.Get("/payments", ledgerControllers.ListPayments)
	ledgerGroup.Post("/withdrawals", ledgerValidators.Withdraw(), ledgerControllers.RequestWithdrawal)
	ledgerGroup.Get("/withdrawals", ledgerControllers.ListWithdrawals)
}
