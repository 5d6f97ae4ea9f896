package courseValidator

import (
	"eadcourse/middleware"

	"github.com/gofiber/fiber/v2"
)

// LessonRequest is the create/update lesson body
type LessonRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=5"`
	VideoUrl    string `json:"videoUrl" validate:"required,url"`
}

// Lesson validates a lesson body and stores it in the request context
func Lesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
