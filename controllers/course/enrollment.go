package courseController

import (
	"github.com/zayi-14/german-school/database"
	"github.com/zayi-14/german-school/middleware"
	"github.com/zayi-14/german-school/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SelectCourse enrolls the authenticated student in a course
func SelectCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	// A student profile must exist before enrolling
	var student models.Student
	if err := db.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You need to complete your student profile first!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// One registration per student and course. Pre-check only, same as the
	// rest of the write paths; concurrent duplicates are not guarded by a
	// database constraint.
	var existing models.Registration
	if err := db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	registration := models.Registration{
		StudentID: student.ID,
		CourseID:  course.ID,
		Reference: uuid.NewString(),
	}
	if err := db.Create(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "You have successfully selected "+course.Title+".", registration)
}

// UnenrollCourse removes the authenticated student's registration for a course
func UnenrollCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You need to complete your student profile first!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var registration models.Registration
	if err := db.Where("student_id = ? AND course_id = ?", student.ID, courseID).First(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or already removed!", nil)
	}

	if err := db.Delete(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed successfully.", nil)
}
