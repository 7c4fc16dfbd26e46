package bookController

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"smartlearn/database"
	"smartlearn/middleware"
	"smartlearn/models"
	"smartlearn/utils"
	bookValidator "smartlearn/validators/book"
)

// CreateBook adds a bookstore item (teacher/owner only)
func CreateBook(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateBook").(*bookValidator.CreateBookRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	book := models.Book{
		Title:       reqData.Title,
		Author:      reqData.Author,
		Description: reqData.Description,
		CoverImage:  reqData.CoverImage,
		Price:       reqData.Price,
		FileURL:     reqData.FileURL,
	}

	if err := database.Database.Db.Create(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Book created successfully!", book)
}

// ListBooks returns the bookstore catalog
func ListBooks(c *fiber.Ctx) error {
	var books []models.Book
	if err := database.Database.Db.
		Where("is_deleted = false").Order("title ASC").Find(&books).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch books!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Books fetched!", books)
}

// PurchaseBook buys a book. Buying a book the user already owns is rejected
// as an informational no-op: no payment record, no second purchase row.
func PurchaseBook(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedPurchaseBook").(*bookValidator.PurchaseBookRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var book models.Book
	if err := db.Where("id = ? AND is_deleted = false", reqData.BookID).First(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	// Duplicate purchase is not an error
	var existing models.BookPurchase
	if err := db.Where("user_id = ? AND book_id = ? AND is_deleted = false", userId, book.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You already own this book!", fiber.Map{
			"bookId": book.ID,
		})
	}

	now := time.Now()
	ref := utils.GeneratePaymentRef()

	payment := models.PaymentRecord{
		UserID:    userId,
		Amount:    book.Price,
		Method:    reqData.Method,
		Kind:      models.PurchaseBook,
		Reference: ref,
		PaidAt:    now,
	}

	purchase := models.BookPurchase{
		UserID:      userId,
		BookID:      book.ID,
		PaymentRef:  ref,
		PurchasedAt: now,
	}

	tx := db.Begin()
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}
	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record purchase!", nil)
	}
	tx.Commit()

	utils.SendBookPurchaseEmail(user.Email, user.Name, book.Title, book.Price)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book purchased successfully!", fiber.Map{
		"bookId":    book.ID,
		"title":     book.Title,
		"reference": ref,
		"amount":    book.Price,
	})
}

// MyBooks lists the user's purchased books
func MyBooks(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var purchases []models.BookPurchase
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Preload("Book").
		Order("purchased_at DESC").Find(&purchases).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched!", purchases)
}

// ReadBook hands out the book file URL to owners of the book
func ReadBook(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	bookID, err := c.ParamsInt("id")
	if err != nil || bookID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid book ID!", nil)
	}

	db := database.Database.Db

	var book models.Book
	if err := db.Where("id = ? AND is_deleted = false", bookID).First(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	var purchase models.BookPurchase
	if err := db.Where("user_id = ? AND book_id = ? AND is_deleted = false", userId, book.ID).First(&purchase).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Purchase this book to read it.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enjoy your book!", fiber.Map{
		"book":    book,
		"fileUrl": book.FileURL,
	})
}
