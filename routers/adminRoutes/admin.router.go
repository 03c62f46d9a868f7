package adminRoutes

import (
	adminControllers "github.com/zayi-14/german-school/controllers/admin"
	"github.com/zayi-14/german-school/middleware"
	courseValidators "github.com/zayi-14/german-school/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin)

	// Course management
	adminGroup.Post("/course", courseValidators.CreateCourse(), adminControllers.CreateCourse)
	adminGroup.Put("/course/:id", courseValidators.CourseID(), courseValidators.UpdateCourse(), adminControllers.UpdateCourse)
	adminGroup.Delete("/course/:id", courseValidators.CourseID(), adminControllers.DeleteCourse)

	// Back-office list screens
	adminGroup.Get("/students", adminControllers.GetStudents)
	adminGroup.Get("/registrations", adminControllers.GetRegistrations)
	adminGroup.Get("/contact", adminControllers.GetContactMessages)

	// Feedback moderation
	adminGroup.Get("/feedback", adminControllers.GetFeedback)
	adminGroup.Patch("/feedback/:id/approve", adminControllers.ToggleFeedbackApproval)
}
