package courseController

import (
	"github.com/zayi-14/german-school/database"
	"github.com/zayi-14/german-school/middleware"
	"github.com/zayi-14/german-school/models"

	"github.com/gofiber/fiber/v2"
)

// GetHome returns the homepage data: the latest courses plus approved
// testimonials, most recent first, capped.
func GetHome(c *fiber.Ctx) error {
	db := database.Database.Db

	var latestCourses []models.Course
	if err := db.Order("created_at desc").Limit(4).Find(&latestCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var testimonials []models.Feedback
	if err := db.Where("is_approved = ?", true).
		Preload("Student").
		Order("created_at desc").
		Limit(6).
		Find(&testimonials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Home data fetched successfully!", fiber.Map{
		"latestCourses": latestCourses,
		"testimonials":  testimonials,
	})
}

// GetAllCourses lists courses with an optional level filter. For a logged-in
// caller the response also carries the ids of courses they are enrolled in.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	level, _ := c.Locals("courseLevel").(string)

	query := db.Model(&models.Course{})
	if level != "" {
		query = query.Where("level = ?", level)
	}

	var courses []models.Course
	if err := query.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	// Enrolled course ids for the optional authenticated caller
	enrolledCourseIDs := []uint{}
	if userID, ok := c.Locals("userId").(uint); ok {
		var student models.Student
		if err := db.Where("user_id = ?", userID).First(&student).Error; err == nil {
			db.Model(&models.Registration{}).
				Where("student_id = ?", student.ID).
				Pluck("course_id", &enrolledCourseIDs)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":           courses,
		"selectedLevel":     level,
		"enrolledCourseIds": enrolledCourseIDs,
	})
}

// GetCourseDetails returns one course by id
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
