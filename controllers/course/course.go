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

// SaveCourse creates a new course
func SaveCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	now := time.Now().UTC()
	course := models.Course{
		CourseID:       uuid.New(),
		Name:           reqData.Name,
		Description:    reqData.Description,
		ImageUrl:       reqData.ImageUrl,
		CourseStatus:   reqData.CourseStatus,
		CourseLevel:    reqData.CourseLevel,
		UserInstructor: uuid.MustParse(reqData.UserInstructor),
		CreationDate:   now,
		LastUpdateDate: now,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		logger.Log.Error("Failed to create course", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	logger.Log.Info("Course created", zap.String("courseId", course.CourseID.String()))
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetAllCourses lists courses with dynamic filters and pagination
func GetAllCourses(c *fiber.Ctx) error {
	pagination := specs.ParsePagination(c, "course_id", specs.CourseSortable)
	filters := specs.CourseFilters(c)

	query := specs.Apply(database.Database.Db.Model(&models.Course{}), filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Log.Error("Failed to count courses", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var courses []models.Course
	if err := pagination.Apply(query).Find(&courses).Error; err != nil {
		logger.Log.Error("Failed to fetch courses", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", specs.NewPage(courses, total, pagination))
}

// GetOneCourse fetches a single course
func GetOneCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// UpdateCourse replaces the mutable fields of a course
func UpdateCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.CourseUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Name = reqData.Name
	course.Description = reqData.Description
	course.ImageUrl = reqData.ImageUrl
	course.CourseStatus = reqData.CourseStatus
	course.CourseLevel = reqData.CourseLevel
	course.LastUpdateDate = time.Now().UTC()

	if err := database.Database.Db.Save(&course).Error; err != nil {
		logger.Log.Error("Failed to update course", zap.String("courseId", courseID.String()), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course and, in the same transaction, every
// module, lesson and subscription under it. The cascade is all or
// nothing.
func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var moduleIDs []uuid.UUID
		if err := tx.Model(&models.Module{}).Where("course_id = ?", courseID).Pluck("module_id", &moduleIDs).Error; err != nil {
			return err
		}
		if len(moduleIDs) > 0 {
			if err := tx.Where("module_id IN ?", moduleIDs).Delete(&models.Lesson{}).Error; err != nil {
				return err
			}
			if err := tx.Where("module_id IN ?", moduleIDs).Delete(&models.Module{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&models.CourseUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		logger.Log.Error("Failed to delete course", zap.String("courseId", courseID.String()), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	logger.Log.Info("Course deleted", zap.String("courseId", courseID.String()))
	return c.SendStatus(fiber.StatusNoContent)
}
