package middleware

import (
	"github.com/zayi-14/german-school/database"
	"github.com/zayi-14/german-school/models"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin checks that the authenticated user holds the ADMIN role.
// Must run after JWTMiddleware.
func RequireAdmin(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	return c.Next()
}
