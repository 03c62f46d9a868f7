package authController

import (
	"log"
	"time"

	"github.com/zayi-14/german-school/config"
	"github.com/zayi-14/german-school/database"
	"github.com/zayi-14/german-school/middleware"
	"github.com/zayi-14/german-school/models"
	"github.com/zayi-14/german-school/utils"
	authValidator "github.com/zayi-14/german-school/validators/auth"
	"github.com/zayi-14/german-school/whatsapp"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register handles the registration workflow: validate, create the account
// identity and student profile in one transaction, optionally enroll in a
// course, then notify the school owner best-effort.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Duplicate checks run before any write
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
	}
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Password: string(hashedPassword),
	}
	var student models.Student

	// Identity and student profile are created atomically
	tx := db.Begin()
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	student = models.Student{
		UserID:   &newUser.ID,
		FullName: reqData.FullName,
		Email:    reqData.Email,
		Phone:    reqData.Phone,
	}
	if err := tx.Create(&student).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving student to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}
	tx.Commit()

	// Optional course enrollment. An unresolvable course id is tolerated:
	// the student registration already succeeded.
	var registration *models.Registration
	var course *models.Course
	if reqData.CourseID != nil {
		var found models.Course
		if err := db.First(&found, *reqData.CourseID).Error; err == nil {
			reg := models.Registration{
				StudentID: student.ID,
				CourseID:  found.ID,
				Reference: uuid.NewString(),
				Notes:     reqData.Notes,
			}
			if err := db.Create(&reg).Error; err != nil {
				log.Printf("Error saving registration: %v", err)
			} else {
				registration = &reg
				course = &found
			}
		} else {
			log.Printf("Course %d not found during registration, skipping enrollment.", *reqData.CourseID)
		}
	}

	// Owner notification is best-effort and never changes the outcome
	whatsapp.NotifyOwner(whatsapp.RegistrationMessage(student, registration, course))

	go func(email, name string) {
		if err := utils.SendWelcomeEmail(email, name); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}(student.Email, student.FullName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful! You can now log in.", fiber.Map{
		"user":    newUser,
		"student": student,
	})
}

// Login authenticates a user and returns a JWT token
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		// Same message as a wrong password, no user enumeration hints
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Update last login time
	user.LastLogin = time.Now()
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Welcome back, "+user.Username+"!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Logout acknowledges logout. Tokens are stateless, the client drops it.
func Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}
