package feedbackController

import (
	"github.com/zayi-14/german-school/database"
	"github.com/zayi-14/german-school/middleware"
	"github.com/zayi-14/german-school/models"
	feedbackValidator "github.com/zayi-14/german-school/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

// SubmitFeedback lets an enrolled student leave a testimonial. It is stored
// unapproved and stays off the homepage until an admin approves it.
func SubmitFeedback(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedFeedback").(*feedbackValidator.FeedbackRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You need to complete your student profile first!", nil)
	}

	// Feedback requires at least one registration
	var registrationCount int64
	db.Model(&models.Registration{}).Where("student_id = ?", student.ID).Count(&registrationCount)
	if registrationCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in at least one course to leave feedback!", nil)
	}

	feedback := models.Feedback{
		StudentID: student.ID,
		Rating:    reqData.Rating,
		Message:   reqData.Message,
		// IsApproved defaults to false, admin approval gates display
	}
	if err := db.Create(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted successfully! Pending approval.", feedback)
}

// GetApprovedFeedback returns approved testimonials, most recent first
func GetApprovedFeedback(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 6)
	if limit < 1 || limit > 50 {
		limit = 6
	}

	var testimonials []models.Feedback
	if err := database.Database.Db.Where("is_approved = ?", true).
		Preload("Student").
		Order("created_at desc").
		Limit(limit).
		Find(&testimonials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched!", fiber.Map{
		"testimonials": testimonials,
	})
}
