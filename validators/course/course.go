package courseValidator

import (
	"eadcourse/database"
	"eadcourse/middleware"
	"eadcourse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CourseRequest is the create-course body
type CourseRequest struct {
	Name           string `json:"name" validate:"required,min=3"`
	Description    string `json:"description" validate:"required,min=5"`
	ImageUrl       string `json:"imageUrl" validate:"omitempty,url"`
	CourseStatus   string `json:"courseStatus" validate:"required,oneof=INPROGRESS APPROVED"`
	CourseLevel    string `json:"courseLevel" validate:"required,oneof=BEGINNER INTERMEDIARY ADVANCED"`
	UserInstructor string `json:"userInstructor" validate:"required,uuid"`
}

// CourseUpdateRequest is the update-course body. The instructor is not
// a mutable field.
type CourseUpdateRequest struct {
	Name         string `json:"name" validate:"required,min=3"`
	Description  string `json:"description" validate:"required,min=5"`
	ImageUrl     string `json:"imageUrl" validate:"omitempty,url"`
	CourseStatus string `json:"courseStatus" validate:"required,oneof=INPROGRESS APPROVED"`
	CourseLevel  string `json:"courseLevel" validate:"required,oneof=BEGINNER INTERMEDIARY ADVANCED"`
}

// CreateCourse validates the create-course body and the instructor
// policy: the instructor must exist in the local user projection with a
// type other than STUDENT, and the caller may only name themselves
// unless they are an ADMIN.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		instructorID := uuid.MustParse(reqData.UserInstructor)

		callerID, ok := c.Locals("callerId").(uuid.UUID)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		if callerID != instructorID {
			var caller models.User
			err := database.Database.Db.Where("user_id = ?", callerID).First(&caller).Error
			if err != nil || caller.UserType != models.UserTypeAdmin {
				return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only name yourself as instructor!", nil)
			}
		}

		var instructor models.User
		if err := database.Database.Db.Where("user_id = ?", instructorID).First(&instructor).Error; err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"userInstructor": "Instructor not found.",
			})
		}
		if instructor.UserType == models.UserTypeStudent {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"userInstructor": "User must be INSTRUCTOR or ADMIN.",
			})
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the update-course body
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseUpdateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
