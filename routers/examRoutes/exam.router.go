package examRoutes

import (
	examControllers "smartlearn/controllers/exam"
	"smartlearn/middleware"
	"smartlearn/models"
	examValidators "smartlearn/validators/exam"

	"github.com/gofiber/fiber/v2"
)

func SetupExamRoutes(app *fiber.App) {
	examGroup := app.Group("/exams", middleware.JWTMiddleware)

	examGroup.Get("/", examControllers.ListExams)
	examGroup.Post("/", middleware.RequireRole(models.RoleTeacher, models.RoleOwner), examValidators.CreateExam(), examControllers.CreateExam)
	examGroup.Post("/generate/options", middleware.RequireRole(models.RoleTeacher, models.RoleOwner), examValidators.GenerateOptions(), examControllers.GenerateOptions)
	examGroup.Get("/attempts", examControllers.MyAttempts)
	examGroup.Get("/:id", examControllers.GetExam)
	examGroup.Post("/:id/submit", examValidators.SubmitExam(), examControllers.SubmitExam)
}
