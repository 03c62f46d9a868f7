package adminController

import (
	"github.com/zayi-14/german-school/database"
	"github.com/zayi-14/german-school/middleware"
	"github.com/zayi-14/german-school/models"

	"github.com/gofiber/fiber/v2"
)

// paginate reads page/limit query parameters with defaults
func paginate(c *fiber.Ctx) (page, limit, offset int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset = (page - 1) * limit
	return
}

// GetStudents lists student profiles for the back-office
func GetStudents(c *fiber.Ctx) error {
	page, limit, offset := paginate(c)

	db := database.Database.Db

	var total int64
	db.Model(&models.Student{}).Count(&total)

	var students []models.Student
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": students,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetRegistrations lists registrations with student and course preloaded
func GetRegistrations(c *fiber.Ctx) error {
	page, limit, offset := paginate(c)

	db := database.Database.Db

	var total int64
	db.Model(&models.Registration{}).Count(&total)

	var registrations []models.Registration
	if err := db.Preload("Student").Preload("Course").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&registrations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", fiber.Map{
		"registrations": registrations,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetFeedback lists all feedback, pending first, for moderation
func GetFeedback(c *fiber.Ctx) error {
	page, limit, offset := paginate(c)

	db := database.Database.Db

	var total int64
	db.Model(&models.Feedback{}).Count(&total)

	var feedback []models.Feedback
	if err := db.Preload("Student").
		Order("is_approved asc, created_at desc").
		Offset(offset).Limit(limit).
		Find(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully!", fiber.Map{
		"feedback": feedback,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ToggleFeedbackApproval flips the approval flag on a feedback entry
func ToggleFeedbackApproval(c *fiber.Ctx) error {
	feedbackID, err := c.ParamsInt("id")
	if err != nil || feedbackID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid feedback ID!", nil)
	}

	db := database.Database.Db

	var feedback models.Feedback
	if err := db.First(&feedback, feedbackID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
	}

	feedback.IsApproved = !feedback.IsApproved
	if err := db.Save(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
	}

	message := "Feedback approved!"
	if !feedback.IsApproved {
		message = "Feedback approval revoked!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, feedback)
}

// GetContactMessages lists contact form messages
func GetContactMessages(c *fiber.Ctx) error {
	page, limit, offset := paginate(c)

	db := database.Database.Db

	var total int64
	db.Model(&models.ContactMessage{}).Count(&total)

	var messages []models.ContactMessage
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contact messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact messages fetched successfully!", fiber.Map{
		"messages": messages,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
