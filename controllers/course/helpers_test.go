package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eadcourse/config"
	"eadcourse/database"
	"eadcourse/middleware"
	"eadcourse/models"
	courseRoutes "eadcourse/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest wires the full route surface against a fresh in-memory
// database named after the test, so tests stay isolated from each other
func setupTest(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.Module{},
		&models.Lesson{},
		&models.CourseUser{},
		&models.User{},
	))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

// doJSON performs a request against the app and decodes the response
// envelope (nil for 204 responses)
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]interface{}
	if resp.StatusCode != fiber.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	}
	return resp, envelope
}

func envelopeData(env map[string]interface{}) map[string]interface{} {
	data, _ := env["data"].(map[string]interface{})
	return data
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.UserID, user.FullName, user.UserType)
	require.NoError(t, err)
	return token
}

func seedUser(t *testing.T, userType, userStatus string) models.User {
	t.Helper()
	user := models.User{
		UserID:     uuid.New(),
		FullName:   "Test User",
		UserType:   userType,
		UserStatus: userStatus,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, instructor uuid.UUID, name string) models.Course {
	t.Helper()
	now := time.Now().UTC()
	course := models.Course{
		CourseID:       uuid.New(),
		Name:           name,
		Description:    "A seeded course",
		CourseStatus:   models.CourseStatusInProgress,
		CourseLevel:    models.CourseLevelBeginner,
		UserInstructor: instructor,
		CreationDate:   now,
		LastUpdateDate: now,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func seedModule(t *testing.T, courseID uuid.UUID, title string) models.Module {
	t.Helper()
	module := models.Module{
		ModuleID:     uuid.New(),
		Title:        title,
		Description:  "A seeded module",
		CreationDate: time.Now().UTC(),
		CourseID:     courseID,
	}
	require.NoError(t, database.Database.Db.Create(&module).Error)
	return module
}

func seedLesson(t *testing.T, moduleID uuid.UUID, title string) models.Lesson {
	t.Helper()
	lesson := models.Lesson{
		LessonID:     uuid.New(),
		Title:        title,
		Description:  "A seeded lesson",
		VideoUrl:     "https://videos.example.com/intro.mp4",
		CreationDate: time.Now().UTC(),
		ModuleID:     moduleID,
	}
	require.NoError(t, database.Database.Db.Create(&lesson).Error)
	return lesson
}

func seedSubscription(t *testing.T, courseID, userID uuid.UUID) models.CourseUser {
	t.Helper()
	courseUser := models.CourseUser{ID: uuid.New(), CourseID: courseID, UserID: userID}
	require.NoError(t, database.Database.Db.Create(&courseUser).Error)
	return courseUser
}
