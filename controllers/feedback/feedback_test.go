package feedbackController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zayi-14/german-school/config"
	"github.com/zayi-14/german-school/database"
	"github.com/zayi-14/german-school/middleware"
	"github.com/zayi-14/german-school/models"
	feedbackRoutes "github.com/zayi-14/german-school/routers/feedbackRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	feedbackRoutes.SetupFeedbackRoutes(app)
	return app
}

func seedStudent(t *testing.T, username string) (models.Student, string) {
	t.Helper()

	db := database.Database.Db

	user := models.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	student := models.Student{UserID: &user.ID, FullName: "Lena Fischer", Email: user.Email, Phone: "+4917611111111"}
	require.NoError(t, db.Create(&student).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	require.NoError(t, err)

	return student, token
}

func enroll(t *testing.T, student models.Student) {
	t.Helper()

	course := models.Course{Title: "German A1", Code: "GER-A1-" + student.Email, Level: models.LevelA1, DurationWeeks: 8}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	registration := models.Registration{StudentID: student.ID, CourseID: course.ID}
	require.NoError(t, database.Database.Db.Create(&registration).Error)
}

func submitFeedback(t *testing.T, app *fiber.App, token string, rating int, message string) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{"rating": rating, "message": message})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func approvedList(t *testing.T, app *fiber.App) []models.Feedback {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/feedback/approved", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Testimonials []models.Feedback `json:"testimonials"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Data.Testimonials
}

func TestSubmitFeedbackWithoutRegistration(t *testing.T) {
	app := setupTestApp(t)

	_, token := seedStudent(t, "lena")

	resp := submitFeedback(t, app, token, 5, "Great course!")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Feedback{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSubmitFeedbackPendingApproval(t *testing.T) {
	app := setupTestApp(t)

	student, token := seedStudent(t, "lena")
	enroll(t, student)

	resp := submitFeedback(t, app, token, 5, "Great course!")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var feedback models.Feedback
	require.NoError(t, database.Database.Db.First(&feedback).Error)
	assert.Equal(t, 5, feedback.Rating)
	assert.False(t, feedback.IsApproved)

	// Unapproved feedback is not shown as a testimonial
	assert.Empty(t, approvedList(t, app))

	// Admin approval makes it visible
	feedback.IsApproved = true
	require.NoError(t, database.Database.Db.Save(&feedback).Error)

	testimonials := approvedList(t, app)
	require.Len(t, testimonials, 1)
	assert.Equal(t, "Great course!", testimonials[0].Message)
}

func TestSubmitFeedbackInvalidRating(t *testing.T) {
	app := setupTestApp(t)

	student, token := seedStudent(t, "lena")
	enroll(t, student)

	resp := submitFeedback(t, app, token, 6, "Too good!")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = submitFeedback(t, app, token, 0, "Missing rating")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestApprovedFeedbackOrderAndCap(t *testing.T) {
	app := setupTestApp(t)

	student, _ := seedStudent(t, "lena")
	enroll(t, student)

	for i := 0; i < 8; i++ {
		feedback := models.Feedback{StudentID: student.ID, Rating: 4, Message: fmt.Sprintf("message %d", i), IsApproved: true}
		require.NoError(t, database.Database.Db.Create(&feedback).Error)
	}

	testimonials := approvedList(t, app)
	assert.Len(t, testimonials, 6)
}
