package subjectValidator

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"smartlearn/middleware"
)

// CreateSubjectRequest is stored in c.Locals("validatedCreateSubject")
type CreateSubjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func CreateSubject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSubjectRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Subject name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateSubject", reqData)
		return c.Next()
	}
}

// AddVideoLessonRequest is stored in c.Locals("validatedAddVideoLesson")
type AddVideoLessonRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	VideoURL        string `json:"videoUrl"`
	DurationMinutes int    `json:"durationMinutes"`
	OrderIndex      int    `json:"orderIndex"`
	IsPublished     bool   `json:"isPublished"`
}

func AddVideoLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddVideoLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Lesson title is required!"
		}
		if strings.TrimSpace(reqData.VideoURL) == "" {
			errors["videoUrl"] = "Video URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAddVideoLesson", reqData)
		return c.Next()
	}
}

// ScheduleLiveClassRequest is stored in c.Locals("validatedScheduleLiveClass")
type ScheduleLiveClassRequest struct {
	Title           string    `json:"title"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	MeetingURL      string    `json:"meetingUrl"`
	TopupPrice      uint      `json:"topupPrice"`
}

func ScheduleLiveClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ScheduleLiveClassRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Class title is required!"
		}
		if reqData.ScheduledAt.IsZero() || reqData.ScheduledAt.Before(time.Now()) {
			errors["scheduledAt"] = "Scheduled time must be in the future!"
		}
		if reqData.DurationMinutes <= 0 {
			reqData.DurationMinutes = 60
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedScheduleLiveClass", reqData)
		return c.Next()
	}
}
