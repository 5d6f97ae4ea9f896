package courseValidator

import (
	"eadcourse/middleware"

	"github.com/gofiber/fiber/v2"
)

// ModuleRequest is the create/update module body
type ModuleRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=5"`
}

// Module validates a module body and stores it in the request context
func Module() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}
