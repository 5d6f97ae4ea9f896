package controllers_test

import (
	"testing"

	"eadcourse/database"
	"eadcourse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lessonBody = map[string]interface{}{
	"title":       "First steps",
	"description": "Installing the toolchain",
	"videoUrl":    "https://videos.example.com/first-steps.mp4",
}

func seedHierarchy(t *testing.T) (models.Course, models.Module) {
	t.Helper()
	instructor := seedUser(t, models.UserTypeInstructor, models.UserStatusActive)
	course := seedCourse(t, instructor.UserID, "Course A")
	module := seedModule(t, course.CourseID, "Module A")
	return course, module
}

func TestSaveLesson(t *testing.T) {
	app := setupTest(t)
	_, module := seedHierarchy(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/modules/"+module.ModuleID.String()+"/lessons", lessonBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := envelopeData(env)
	assert.Equal(t, "First steps", data["title"])
	assert.Equal(t, module.ModuleID.String(), data["moduleId"])
}

func TestSaveLessonModuleNotFound(t *testing.T) {
	app := setupTest(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/modules/"+uuid.NewString()+"/lessons", lessonBody, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSaveLessonValidation(t *testing.T) {
	app := setupTest(t)
	_, module := seedHierarchy(t)

	body := map[string]interface{}{"title": "Ok title", "description": "Ok description", "videoUrl": "not-a-url"}
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/modules/"+module.ModuleID.String()+"/lessons", body, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelopeData(env), "videoUrl")
}

func TestLessonWrongParentIsNotFound(t *testing.T) {
	app := setupTest(t)
	course, moduleA := seedHierarchy(t)
	moduleB := seedModule(t, course.CourseID, "Module B")
	lesson := seedLesson(t, moduleB.ModuleID, "Lesson of B")

	base := "/api/v1/modules/" + moduleA.ModuleID.String() + "/lessons/" + lesson.LessonID.String()

	resp, _ := doJSON(t, app, fiber.MethodGet, base, nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPut, base, lessonBody, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, base, nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Lesson{}).Where("lesson_id = ?", lesson.LessonID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateLesson(t *testing.T) {
	app := setupTest(t)
	_, module := seedHierarchy(t)
	lesson := seedLesson(t, module.ModuleID, "Old title")

	body := map[string]interface{}{
		"title":       "New title",
		"description": "New description",
		"videoUrl":    "https://videos.example.com/new.mp4",
	}
	resp, env := doJSON(t, app, fiber.MethodPut,
		"/api/v1/modules/"+module.ModuleID.String()+"/lessons/"+lesson.LessonID.String(), body, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := envelopeData(env)
	assert.Equal(t, "New title", data["title"])
	assert.Equal(t, "https://videos.example.com/new.mp4", data["videoUrl"])
}

func TestDeleteLesson(t *testing.T) {
	app := setupTest(t)
	_, module := seedHierarchy(t)
	lesson := seedLesson(t, module.ModuleID, "Doomed lesson")

	resp, _ := doJSON(t, app, fiber.MethodDelete,
		"/api/v1/modules/"+module.ModuleID.String()+"/lessons/"+lesson.LessonID.String(), nil, "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Lesson{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetAllLessonsPaged(t *testing.T) {
	app := setupTest(t)
	_, module := seedHierarchy(t)
	for i := 0; i < 11; i++ {
		seedLesson(t, module.ModuleID, "Lesson")
	}

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/v1/modules/"+module.ModuleID.String()+"/lessons", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := envelopeData(env)
	assert.EqualValues(t, 11, page["totalElements"])
	assert.Len(t, page["content"].([]interface{}), 10)

	resp, env = doJSON(t, app, fiber.MethodGet, "/api/v1/modules/"+module.ModuleID.String()+"/lessons?page=1", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, envelopeData(env)["content"].([]interface{}), 1)
}
