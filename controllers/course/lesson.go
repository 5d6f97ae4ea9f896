package controllers

import (
	"time"

	"eadcourse/database"
	"eadcourse/logger"
	"eadcourse/middleware"
	"eadcourse/models"
	"eadcourse/specs"
	courseValidator "eadcourse/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// findLessonIntoModule resolves a lesson only when it belongs to the
// given module
func findLessonIntoModule(moduleID, lessonID uuid.UUID) (*models.Lesson, error) {
	var lesson models.Lesson
	err := database.Database.Db.
		Where("lesson_id = ? AND module_id = ?", lessonID, moduleID).
		First(&lesson).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// SaveLesson creates a lesson under a module
func SaveLesson(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module models.Module
	if err := database.Database.Db.Where("module_id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*courseValidator.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := models.Lesson{
		LessonID:     uuid.New(),
		Title:        reqData.Title,
		Description:  reqData.Description,
		VideoUrl:     reqData.VideoUrl,
		CreationDate: time.Now().UTC(),
		ModuleID:     module.ModuleID,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		logger.Log.Error("Failed to create lesson", zap.String("moduleId", moduleID.String()), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// GetAllLessons lists the lessons of a module; the module scope cannot
// be bypassed by filters
func GetAllLessons(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module models.Module
	if err := database.Database.Db.Where("module_id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	pagination := specs.ParsePagination(c, "lesson_id", specs.LessonSortable)
	filters := specs.LessonFilters(c)

	query := specs.Apply(
		database.Database.Db.Model(&models.Lesson{}).Where("module_id = ?", moduleID),
		filters,
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Log.Error("Failed to count lessons", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	var lessons []models.Lesson
	if err := pagination.Apply(query).Find(&lessons).Error; err != nil {
		logger.Log.Error("Failed to fetch lessons", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", specs.NewPage(lessons, total, pagination))
}

// GetOneLesson fetches a lesson of a module
func GetOneLesson(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}
	lessonID, err := uuid.Parse(c.Params("lessonId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	lesson, err := findLessonIntoModule(moduleID, lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found for this module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

// UpdateLesson replaces the mutable fields of a lesson
func UpdateLesson(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}
	lessonID, err := uuid.Parse(c.Params("lessonId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	lesson, err := findLessonIntoModule(moduleID, lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found for this module!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*courseValidator.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson.Title = reqData.Title
	lesson.Description = reqData.Description
	lesson.VideoUrl = reqData.VideoUrl

	if err := database.Database.Db.Save(lesson).Error; err != nil {
		logger.Log.Error("Failed to update lesson", zap.String("lessonId", lessonID.String()), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson removes a lesson of a module
func DeleteLesson(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}
	lessonID, err := uuid.Parse(c.Params("lessonId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	lesson, err := findLessonIntoModule(moduleID, lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found for this module!", nil)
	}

	if err := database.Database.Db.Delete(lesson).Error; err != nil {
		logger.Log.Error("Failed to delete lesson", zap.String("lessonId", lessonID.String()), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
