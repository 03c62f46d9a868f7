package authController_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zayi-14/german-school/config"
	"github.com/zayi-14/german-school/database"
	"github.com/zayi-14/german-school/models"
	authRoutes "github.com/zayi-14/german-school/routers/authRoutes"
	"github.com/zayi-14/german-school/whatsapp"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type recordingSender struct {
	sent []string
	fail bool
}

func (s *recordingSender) Name() string { return "recording" }

func (s *recordingSender) Send(to, body string) (bool, error) {
	if s.fail {
		return false, errors.New("provider timeout")
	}
	s.sent = append(s.sent, body)
	return true, nil
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	whatsapp.Default = &whatsapp.Dispatcher{Owner: "491700000000", Senders: []whatsapp.Sender{&recordingSender{}}}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func registerPayload() map[string]interface{} {
	return map[string]interface{}{
		"username":        "anna",
		"fullName":        "Anna Schmidt",
		"email":           "anna@example.com",
		"phone":           "+4917612345678",
		"password":        "schnitzel123",
		"confirmPassword": "schnitzel123",
	}
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.Database.Db.Model(model).Count(&count).Error)
	return count
}

func TestRegisterMismatchedPasswords(t *testing.T) {
	app := setupTestApp(t)

	payload := registerPayload()
	payload["confirmPassword"] = "different123"

	resp := postJSON(t, app, "/auth/register", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// No partial records
	assert.EqualValues(t, 0, countRows(t, &models.User{}))
	assert.EqualValues(t, 0, countRows(t, &models.Student{}))
	assert.EqualValues(t, 0, countRows(t, &models.Registration{}))
}

func TestRegisterMissingFields(t *testing.T) {
	app := setupTestApp(t)

	payload := registerPayload()
	delete(payload, "phone")
	delete(payload, "fullName")

	resp := postJSON(t, app, "/auth/register", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.EqualValues(t, 0, countRows(t, &models.User{}))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := setupTestApp(t)

	resp := postJSON(t, app, "/auth/register", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	payload := registerPayload()
	payload["email"] = "other@example.com"

	resp = postJSON(t, app, "/auth/register", payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.EqualValues(t, 1, countRows(t, &models.User{}))
	assert.EqualValues(t, 1, countRows(t, &models.Student{}))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)

	resp := postJSON(t, app, "/auth/register", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	payload := registerPayload()
	payload["username"] = "otheranna"

	resp = postJSON(t, app, "/auth/register", payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.EqualValues(t, 1, countRows(t, &models.User{}))
}

func TestRegisterWithCourse(t *testing.T) {
	app := setupTestApp(t)

	course := models.Course{Title: "German A1", Code: "GER-A1", Level: models.LevelA1, DurationWeeks: 8, Price: 199.99}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	payload := registerPayload()
	payload["courseId"] = course.ID

	resp := postJSON(t, app, "/auth/register", payload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	assert.EqualValues(t, 1, countRows(t, &models.User{}))
	assert.EqualValues(t, 1, countRows(t, &models.Student{}))
	assert.EqualValues(t, 1, countRows(t, &models.Registration{}))

	var registration models.Registration
	require.NoError(t, database.Database.Db.First(&registration).Error)
	assert.Equal(t, course.ID, registration.CourseID)
	assert.NotEmpty(t, registration.Reference)

	// Student is linked to the new identity
	var student models.Student
	require.NoError(t, database.Database.Db.First(&student).Error)
	require.NotNil(t, student.UserID)

	var user models.User
	require.NoError(t, database.Database.Db.First(&user).Error)
	assert.Equal(t, user.ID, *student.UserID)
}

func TestRegisterWithUnknownCourse(t *testing.T) {
	app := setupTestApp(t)

	payload := registerPayload()
	payload["courseId"] = 99999

	resp := postJSON(t, app, "/auth/register", payload)

	// Registration of the student still succeeds, course link is skipped
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 1, countRows(t, &models.User{}))
	assert.EqualValues(t, 1, countRows(t, &models.Student{}))
	assert.EqualValues(t, 0, countRows(t, &models.Registration{}))
}

func TestRegisterNotificationContent(t *testing.T) {
	app := setupTestApp(t)

	sender := &recordingSender{}
	whatsapp.Default = &whatsapp.Dispatcher{Owner: "491700000000", Senders: []whatsapp.Sender{sender}}

	resp := postJSON(t, app, "/auth/register", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "Anna Schmidt")
	assert.Contains(t, sender.sent[0], "anna@example.com")
	assert.Contains(t, sender.sent[0], "No course selected")
}

func TestRegisterNotificationFailureDoesNotFailRequest(t *testing.T) {
	app := setupTestApp(t)

	whatsapp.Default = &whatsapp.Dispatcher{Owner: "491700000000", Senders: []whatsapp.Sender{&recordingSender{fail: true}}}

	resp := postJSON(t, app, "/auth/register", registerPayload())

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 1, countRows(t, &models.User{}))
}

func TestLogin(t *testing.T) {
	app := setupTestApp(t)

	resp := postJSON(t, app, "/auth/register", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", map[string]string{"username": "anna", "password": "schnitzel123"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Status)
	assert.NotEmpty(t, body.Data.Token)
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := setupTestApp(t)

	resp := postJSON(t, app, "/auth/register", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Wrong password and unknown user get the same generic message
	resp = postJSON(t, app, "/auth/login", map[string]string{"username": "anna", "password": "wrongpassword"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", map[string]string{"username": "nobody", "password": "whatever123"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
