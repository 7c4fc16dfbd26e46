package examController

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"smartlearn/database"
	"smartlearn/middleware"
	"smartlearn/models"
	examModels "smartlearn/models/exam"
	"smartlearn/services"
	"smartlearn/utils"
	examValidator "smartlearn/validators/exam"
)

// CreateExam lets a teacher define an exam and its question list in one call
func CreateExam(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCreateExam").(*examValidator.CreateExamRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Every referenced subject must exist
	for _, q := range reqData.Questions {
		var subject models.Subject
		if err := db.Where("id = ? AND is_deleted = false", q.SubjectID).First(&subject).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "One of the questions references an unknown subject!", nil)
		}
	}

	exam := examModels.Examination{
		Title:           reqData.Title,
		DurationMinutes: reqData.DurationMinutes,
		CreatedBy:       userId,
		IsPublished:     true,
	}

	tx := db.Begin()
	if err := tx.Create(&exam).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create exam!", nil)
	}

	for i, q := range reqData.Questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to encode options!", nil)
		}

		question := examModels.Question{
			ExamID:        exam.ID,
			SubjectID:     q.SubjectID,
			Text:          q.Text,
			Options:       optionsJSON,
			CorrectAnswer: q.CorrectAnswer,
			OrderIndex:    i,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create questions!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam created successfully!", fiber.Map{
		"examId":        exam.ID,
		"title":         exam.Title,
		"questionCount": len(reqData.Questions),
	})
}

// GenerateOptions asks the hosted model for wrong-answer distractors. A
// failed or misconfigured model yields an empty list, never an error.
func GenerateOptions(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGenerateOptions").(*examValidator.GenerateOptionsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	options := utils.GenerateQuizOptions(reqData.Question, reqData.CorrectAnswer, reqData.Count)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Options generated!", fiber.Map{
		"options": options,
	})
}

// ListExams returns published exams with their question counts
func ListExams(c *fiber.Ctx) error {
	db := database.Database.Db

	var exams []examModels.Examination
	if err := db.Where("is_published = true AND is_deleted = false").
		Order("created_at DESC").Find(&exams).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exams!", nil)
	}

	type examSummary struct {
		ID              uint   `json:"id"`
		Title           string `json:"title"`
		DurationMinutes int    `json:"durationMinutes"`
		QuestionCount   int64  `json:"questionCount"`
	}

	summaries := make([]examSummary, len(exams))
	for i, e := range exams {
		var count int64
		db.Model(&examModels.Question{}).Where("exam_id = ? AND is_deleted = false", e.ID).Count(&count)
		summaries[i] = examSummary{ID: e.ID, Title: e.Title, DurationMinutes: e.DurationMinutes, QuestionCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exams fetched!", summaries)
}

// GetExam returns one exam with its questions. Correct answers are never
// serialized to students; the Question model hides them from JSON.
func GetExam(c *fiber.Ctx) error {
	examID, err := c.ParamsInt("id")
	if err != nil || examID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam ID!", nil)
	}

	db := database.Database.Db

	var exam examModels.Examination
	if err := db.Where("id = ? AND is_published = true AND is_deleted = false", examID).First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	var questions []examModels.Question
	if err := db.Where("exam_id = ? AND is_deleted = false", exam.ID).
		Order("order_index ASC").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}
	exam.Questions = questions

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam fetched!", exam)
}

// SubmitExam grades a submission and appends an immutable attempt record
func SubmitExam(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	examID, err := c.ParamsInt("id")
	if err != nil || examID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam ID!", nil)
	}

	reqData, ok := c.Locals("validatedSubmitExam").(*examValidator.SubmitExamRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var exam examModels.Examination
	if err := db.Where("id = ? AND is_published = true AND is_deleted = false", examID).First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	var questions []examModels.Question
	if err := db.Where("exam_id = ? AND is_deleted = false", exam.ID).Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	result := services.GradeExam(questions, reqData.Answers)

	answersJSON, _ := json.Marshal(reqData.Answers)
	bySubjectJSON, _ := json.Marshal(result.BySubject)

	var attemptCount int64
	db.Model(&examModels.Attempt{}).Where("user_id = ? AND exam_id = ? AND is_deleted = false", userId, exam.ID).Count(&attemptCount)

	attempt := examModels.Attempt{
		ExamID:         exam.ID,
		UserID:         userId,
		Answers:        answersJSON,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		SubjectScores:  bySubjectJSON,
		AttemptNumber:  int(attemptCount) + 1,
		CompletedAt:    time.Now(),
	}

	if err := db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit exam!", nil)
	}

	utils.SendExamResultEmail(user.Email, user.Name, exam.Title, result.Score, result.TotalQuestions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam submitted!", fiber.Map{
		"attemptId":       attempt.ID,
		"score":           result.Score,
		"totalQuestions":  result.TotalQuestions,
		"scoresBySubject": result.BySubject,
		"completedAt":     attempt.CompletedAt,
	})
}

// MyAttempts returns the user's attempt history, newest first
func MyAttempts(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var attempts []examModels.Attempt
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("completed_at DESC").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched!", attempts)
}
