package contactController

import (
	"github.com/zayi-14/german-school/database"
	"github.com/zayi-14/german-school/middleware"
	"github.com/zayi-14/german-school/models"
	feedbackValidator "github.com/zayi-14/german-school/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

// SubmitContact stores a message from the public contact form
func SubmitContact(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*feedbackValidator.ContactRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	contact := models.ContactMessage{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Message: reqData.Message,
	}
	if err := database.Database.Db.Create(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thanks for contacting us. We'll reply soon.", nil)
}
