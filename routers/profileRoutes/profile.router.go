package profileRoutes

import (
	courseControllers "github.com/zayi-14/german-school/controllers/course"
	profileControllers "github.com/zayi-14/german-school/controllers/profile"
	"github.com/zayi-14/german-school/middleware"
	courseValidators "github.com/zayi-14/german-school/validators/course"
	profileValidators "github.com/zayi-14/german-school/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/profile", middleware.JWTMiddleware)

	profileGroup.Get("/", profileControllers.GetProfile)
	profileGroup.Put("/", profileValidators.UpdateProfile(), profileControllers.UpdateProfile)
	profileGroup.Delete("/course/:id", courseValidators.CourseID(), courseControllers.UnenrollCourse)
}
