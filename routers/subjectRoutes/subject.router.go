package subjectRoutes

import (
	subjectControllers "smartlearn/controllers/subject"
	"smartlearn/middleware"
	"smartlearn/models"
	subjectValidators "smartlearn/validators/subject"

	"github.com/gofiber/fiber/v2"
)

func SetupSubjectRoutes(app *fiber.App) {
	subjectGroup := app.Group("/subjects", middleware.JWTMiddleware)

	subjectGroup.Get("/", subjectControllers.ListSubjects)
	subjectGroup.Post("/", middleware.RequireRole(models.RoleTeacher, models.RoleOwner), subjectValidators.CreateSubject(), subjectControllers.CreateSubject)
	subjectGroup.Get("/live-classes", subjectControllers.ListLiveClasses)
	subjectGroup.Get("/live-classes/:id/join", subjectControllers.JoinLiveClass)
	subjectGroup.Get("/:id", subjectControllers.GetSubject)
	subjectGroup.Post("/:id/lessons", middleware.RequireRole(models.RoleTeacher, models.RoleOwner), subjectValidators.AddVideoLesson(), subjectControllers.AddVideoLesson)
	subjectGroup.Post("/:id/live-classes", middleware.RequireRole(models.RoleTeacher, models.RoleOwner), subjectValidators.ScheduleLiveClass(), subjectControllers.ScheduleLiveClass)
}
