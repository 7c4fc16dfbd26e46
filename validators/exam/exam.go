package examValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartlearn/middleware"
)

// QuestionInput is one question in a CreateExamRequest.
type QuestionInput struct {
	SubjectID     uint     `json:"subjectId"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// CreateExamRequest is stored in c.Locals("validatedCreateExam")
type CreateExamRequest struct {
	Title           string          `json:"title"`
	DurationMinutes int             `json:"durationMinutes"`
	Questions       []QuestionInput `json:"questions"`
}

// CreateExam validates a teacher's exam definition. Every question must name
// a subject, carry at least two options, and its correct answer must be one
// of them.
func CreateExam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateExamRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.DurationMinutes <= 0 {
			errors["durationMinutes"] = "Duration must be greater than 0!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}

		for _, q := range reqData.Questions {
			if q.SubjectID == 0 {
				errors["questions"] = "Every question must reference a subject!"
				break
			}
			if strings.TrimSpace(q.Text) == "" {
				errors["questions"] = "Every question needs text!"
				break
			}
			if len(q.Options) < 2 {
				errors["questions"] = "Every question needs at least two options!"
				break
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				errors["questions"] = "The correct answer must be one of the options!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateExam", reqData)
		return c.Next()
	}
}

// SubmitExamRequest is stored in c.Locals("validatedSubmitExam")
type SubmitExamRequest struct {
	Answers map[uint]string `json:"answers"`
}

// SubmitExam validates an exam submission. An empty answer map is allowed —
// unanswered questions simply grade as incorrect.
func SubmitExam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitExamRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Answers == nil {
			reqData.Answers = map[uint]string{}
		}

		c.Locals("validatedSubmitExam", reqData)
		return c.Next()
	}
}

// GenerateOptionsRequest is stored in c.Locals("validatedGenerateOptions")
type GenerateOptionsRequest struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	Count         int    `json:"count"`
}

// GenerateOptions validates an AI distractor-generation request
func GenerateOptions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GenerateOptionsRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question text is required!"
		}
		if strings.TrimSpace(reqData.CorrectAnswer) == "" {
			errors["correctAnswer"] = "The correct answer is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGenerateOptions", reqData)
		return c.Next()
	}
}
