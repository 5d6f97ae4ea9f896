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
	"gorm.io/gorm"
)

// findModuleIntoCourse resolves a module only when it belongs to the
// given course; a valid module id under a different course is treated
// as absent
func findModuleIntoCourse(courseID, moduleID uuid.UUID) (*models.Module, error) {
	var module models.Module
	err := database.Database.Db.
		Where("module_id = ? AND course_id = ?", moduleID, courseID).
		First(&module).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// SaveModule creates a module under a course
func SaveModule(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := models.Module{
		ModuleID:     uuid.New(),
		Title:        reqData.Title,
		Description:  reqData.Description,
		CreationDate: time.Now().UTC(),
		CourseID:     course.CourseID,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		logger.Log.Error("Failed to create module", zap.String("courseId", courseID.String()), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// GetAllModules lists the modules of a course. The course scope is
// conjoined outside the caller-supplied filters, so a filter can never
// surface another course's modules.
func GetAllModules(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	pagination := specs.ParsePagination(c, "module_id", specs.ModuleSortable)
	filters := specs.ModuleFilters(c)

	query := specs.Apply(
		database.Database.Db.Model(&models.Module{}).Where("course_id = ?", courseID),
		filters,
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Log.Error("Failed to count modules", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	var modules []models.Module
	if err := pagination.Apply(query).Find(&modules).Error; err != nil {
		logger.Log.Error("Failed to fetch modules", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", specs.NewPage(modules, total, pagination))
}

// GetOneModule fetches a module of a course with its parent course
// eagerly loaded
func GetOneModule(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module models.Module
	err = database.Database.Db.
		Preload("Course").
		Where("module_id = ? AND course_id = ?", moduleID, courseID).
		First(&module).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found for this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

// UpdateModule replaces the mutable fields of a module
func UpdateModule(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	module, err := findModuleIntoCourse(courseID, moduleID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found for this course!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module.Title = reqData.Title
	module.Description = reqData.Description

	if err := database.Database.Db.Save(module).Error; err != nil {
		logger.Log.Error("Failed to update module", zap.String("moduleId", moduleID.String()), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// DeleteModule removes a module and its lessons in one transaction
func DeleteModule(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	module, err := findModuleIntoCourse(courseID, moduleID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found for this course!", nil)
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", module.ModuleID).Delete(&models.Lesson{}).Error; err != nil {
			return err
		}
		return tx.Delete(module).Error
	})
	if err != nil {
		logger.Log.Error("Failed to delete module", zap.String("moduleId", moduleID.String()), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
