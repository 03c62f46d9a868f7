package courseRoutes

import (
	controllers "github.com/zayi-14/german-school/controllers/course"
	"github.com/zayi-14/german-school/middleware"
	validators "github.com/zayi-14/german-school/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public listing, personalized with enrolled ids for logged-in callers
	courseGroup.Get("/home", controllers.GetHome)
	courseGroup.Get("/list", middleware.OptionalJWT, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/select", middleware.JWTMiddleware, validators.CourseID(), controllers.SelectCourse)
}
