package courseValidator

import (
	"strconv"
	"strings"

	"github.com/zayi-14/german-school/middleware"
	"github.com/zayi-14/german-school/models"

	"github.com/gofiber/fiber/v2"
)

// CourseRequest is the admin create/update payload. Code is ignored on
// update, the course code is immutable once created.
type CourseRequest struct {
	Title         string  `json:"title"`
	Code          string  `json:"code"`
	Level         string  `json:"level"`
	DurationWeeks uint    `json:"durationWeeks"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
}

// CourseList validates the optional level filter on the course listing
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		level := strings.TrimSpace(c.Query("level"))
		if level != "" && !models.IsValidLevel(level) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid level! Use one of A1, A2, B1, B2.", nil)
		}

		c.Locals("courseLevel", level)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		// Validate CourseID is a valid integer
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateCourse validator middleware (admin)
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Code) == "" {
			errors["code"] = "Code is required!"
		}
		if !models.IsValidLevel(reqData.Level) {
			errors["level"] = "Level must be one of A1, A2, B1, B2!"
		}
		if reqData.DurationWeeks == 0 {
			errors["durationWeeks"] = "Duration must be at least 1 week!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware (admin). All fields optional.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Level != "" && !models.IsValidLevel(reqData.Level) {
			errors["level"] = "Level must be one of A1, A2, B1, B2!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
