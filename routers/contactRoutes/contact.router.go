package contactRoutes

import (
	contactControllers "github.com/zayi-14/german-school/controllers/contact"
	feedbackValidators "github.com/zayi-14/german-school/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	app.Post("/contact", feedbackValidators.Contact(), contactControllers.SubmitContact)
}
