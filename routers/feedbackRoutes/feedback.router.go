package feedbackRoutes

import (
	feedbackControllers "github.com/zayi-14/german-school/controllers/feedback"
	"github.com/zayi-14/german-school/middleware"
	feedbackValidators "github.com/zayi-14/german-school/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

func SetupFeedbackRoutes(app *fiber.App) {
	feedbackGroup := app.Group("/feedback")

	feedbackGroup.Get("/approved", feedbackControllers.GetApprovedFeedback)
	feedbackGroup.Post("/", middleware.JWTMiddleware, feedbackValidators.SubmitFeedback(), feedbackControllers.SubmitFeedback)
}
