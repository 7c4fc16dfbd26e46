package subjectController

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"smartlearn/database"
	"smartlearn/middleware"
	"smartlearn/models"
	"smartlearn/services"
	subjectValidator "smartlearn/validators/subject"
)

// CreateSubject lets a teacher add a subject to the catalog
func CreateSubject(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCreateSubject").(*subjectValidator.CreateSubjectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	subject := models.Subject{
		Name:        reqData.Name,
		Description: reqData.Description,
		Icon:        reqData.Icon,
		TeacherID:   userId,
	}

	if err := database.Database.Db.Create(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully!", subject)
}

// ListSubjects returns the catalog; browsing is free for everyone
func ListSubjects(c *fiber.Ctx) error {
	var subjects []models.Subject
	if err := database.Database.Db.
		Where("is_deleted = false").Order("name ASC").Find(&subjects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched!", subjects)
}

// GetSubject returns one subject with its published video lessons. Watching
// requires an active plan, so the lesson list is withheld without one;
// entitlement is re-evaluated on every call, never cached.
func GetSubject(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	subjectID, err := c.ParamsInt("id")
	if err != nil || subjectID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject ID!", nil)
	}

	db := database.Database.Db

	var subject models.Subject
	if err := db.Where("id = ? AND is_deleted = false", subjectID).First(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	sub, err := models.LatestSubscription(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscription!", nil)
	}
	entitlement := services.EvaluateEntitlement(sub, time.Now())

	if !entitlement.IsActive() {
		message := "An active plan is required to watch lessons."
		if entitlement.Status == services.EntitlementExpired {
			message = "Your " + string(entitlement.Plan) + " plan has expired. Renew to keep watching."
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject fetched!", fiber.Map{
			"subject":     subject,
			"entitlement": entitlement,
			"lessons":     []models.VideoLesson{},
			"notice":      message,
		})
	}

	var lessons []models.VideoLesson
	if err := db.Where("subject_id = ? AND is_published = true AND is_deleted = false", subject.ID).
		Order("order_index ASC").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject fetched!", fiber.Map{
		"subject":     subject,
		"entitlement": entitlement,
		"lessons":     lessons,
	})
}

// AddVideoLesson lets a teacher attach a recorded lesson to a subject
func AddVideoLesson(c *fiber.Ctx) error {
	subjectID, err := c.ParamsInt("id")
	if err != nil || subjectID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject ID!", nil)
	}

	reqData, ok := c.Locals("validatedAddVideoLesson").(*subjectValidator.AddVideoLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subject models.Subject
	if err := db.Where("id = ? AND is_deleted = false", subjectID).First(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	lesson := models.VideoLesson{
		SubjectID:       subject.ID,
		Title:           reqData.Title,
		Description:     reqData.Description,
		VideoURL:        reqData.VideoURL,
		DurationMinutes: reqData.DurationMinutes,
		OrderIndex:      reqData.OrderIndex,
		IsPublished:     reqData.IsPublished,
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}

// ScheduleLiveClass lets a teacher schedule a live session on a subject
func ScheduleLiveClass(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	subjectID, err := c.ParamsInt("id")
	if err != nil || subjectID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject ID!", nil)
	}

	reqData, ok := c.Locals("validatedScheduleLiveClass").(*subjectValidator.ScheduleLiveClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subject models.Subject
	if err := db.Where("id = ? AND is_deleted = false", subjectID).First(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	liveClass := models.LiveClass{
		SubjectID:       subject.ID,
		TeacherID:       userId,
		Title:           reqData.Title,
		ScheduledAt:     reqData.ScheduledAt,
		DurationMinutes: reqData.DurationMinutes,
		MeetingURL:      reqData.MeetingURL,
		TopupPrice:      reqData.TopupPrice,
	}

	if err := db.Create(&liveClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule live class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Live class scheduled!", liveClass)
}

// ListLiveClasses returns upcoming live classes across all subjects
func ListLiveClasses(c *fiber.Ctx) error {
	var classes []models.LiveClass
	if err := database.Database.Db.
		Where("scheduled_at > ? AND is_deleted = false", time.Now().Add(-2*time.Hour)).
		Order("scheduled_at ASC").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch live classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live classes fetched!", classes)
}

// JoinLiveClass hands out the meeting URL when the user's subscription
// unlocks this class: an active Monthly plan or a one-time topup token for
// this specific class.
func JoinLiveClass(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	classID, err := c.ParamsInt("id")
	if err != nil || classID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid live class ID!", nil)
	}

	db := database.Database.Db

	var liveClass models.LiveClass
	if err := db.Where("id = ? AND is_deleted = false", classID).First(&liveClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Live class not found!", nil)
	}

	sub, err := models.LatestSubscription(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscription!", nil)
	}

	if !services.CanJoinLiveClass(sub, liveClass.ID, time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "A Monthly plan or a one-time access purchase is required to join this class.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Access granted!", fiber.Map{
		"liveClass":  liveClass,
		"meetingUrl": liveClass.MeetingURL,
	})
}
