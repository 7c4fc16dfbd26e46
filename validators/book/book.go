package bookValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartlearn/middleware"
	"smartlearn/models"
)

// CreateBookRequest is stored in c.Locals("validatedCreateBook")
type CreateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
	Price       uint   `json:"price"`
	FileURL     string `json:"fileUrl"`
}

// CreateBook validates a new bookstore item
func CreateBook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBookRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if len(strings.TrimSpace(reqData.Title)) < 2 {
			errors["title"] = "Title must be at least 2 characters long!"
		}
		if reqData.Price == 0 {
			errors["price"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateBook", reqData)
		return c.Next()
	}
}

// PurchaseBookRequest is stored in c.Locals("validatedPurchaseBook")
type PurchaseBookRequest struct {
	BookID uint   `json:"bookId"`
	Method string `json:"method"`
}

// PurchaseBook validates a book purchase
func PurchaseBook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PurchaseBookRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.BookID == 0 {
			errors["bookId"] = "Book ID is required!"
		}

		reqData.Method = strings.ToUpper(strings.TrimSpace(reqData.Method))
		switch reqData.Method {
		case models.MethodMTNMoMo, models.MethodOrangeMoney, models.MethodBankTransfer:
		default:
			errors["method"] = "Payment method must be MTN_MOMO, ORANGE_MONEY or BANK_TRANSFER!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPurchaseBook", reqData)
		return c.Next()
	}
}
