package courseValidator

import (
	"eadcourse/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubscriptionRequest is the course subscription body
type SubscriptionRequest struct {
	UserId string `json:"userId" validate:"required,uuid"`
}

// Subscription validates the subscription body
func Subscription() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubscriptionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedSubscription", reqData)
		return c.Next()
	}
}
