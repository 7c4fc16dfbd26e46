package authValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"smartlearn/middleware"
	"smartlearn/models"
)

var validate = validator.New()

// SignupRequest is stored in c.Locals("validatedSignup")
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Name":
					errors["name"] = "Name must be at least 3 characters long!"
				case "Email":
					errors["email"] = "A valid email address is required!"
				case "Password":
					errors["password"] = "Password must be at least 6 characters long!"
				}
			}
		}

		// Only student and teacher accounts self-register; the owner account
		// is provisioned out of band.
		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))
		if reqData.Role == "" {
			reqData.Role = models.RoleStudent
		}
		if reqData.Role != models.RoleStudent && reqData.Role != models.RoleTeacher {
			errors["role"] = "Role must be STUDENT or TEACHER!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// LoginRequest is stored in c.Locals("validatedLogin")
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Email":
					errors["email"] = "A valid email address is required!"
				case "Password":
					errors["password"] = "Password is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// VerifyOTPRequest is stored in c.Locals("validatedVerifyOTP")
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// VerifyOTP validator middleware
func VerifyOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyOTPRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Email":
					errors["email"] = "A valid email address is required!"
				case "Code":
					errors["code"] = "A 6-digit code is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyOTP", reqData)
		return c.Next()
	}
}
