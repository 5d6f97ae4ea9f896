package courseRoutes

import (
	controllers "eadcourse/controllers/course"
	"eadcourse/middleware"
	validators "eadcourse/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the whole /api/v1 surface: the course
// hierarchy, lessons and subscriptions
func SetupCourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Courses. Creation carries the instructor policy, so it needs the
	// caller's identity.
	api.Post("/courses", middleware.JWTMiddleware, validators.CreateCourse(), controllers.SaveCourse)
	api.Get("/courses", controllers.GetAllCourses)
	api.Get("/courses/:id", controllers.GetOneCourse)
	api.Put("/courses/:id", validators.UpdateCourse(), controllers.UpdateCourse)
	api.Delete("/courses/:id", controllers.DeleteCourse)

	// Modules of a course
	api.Post("/courses/:id/modules", validators.Module(), controllers.SaveModule)
	api.Get("/courses/:courseId/modules", controllers.GetAllModules)
	api.Get("/courses/:courseId/modules/:moduleId", controllers.GetOneModule)
	api.Put("/courses/:courseId/modules/:moduleId", validators.Module(), controllers.UpdateModule)
	api.Delete("/courses/:courseId/modules/:moduleId", controllers.DeleteModule)

	// Lessons of a module
	api.Post("/modules/:moduleId/lessons", validators.Lesson(), controllers.SaveLesson)
	api.Get("/modules/:moduleId/lessons", controllers.GetAllLessons)
	api.Get("/modules/:moduleId/lessons/:lessonId", controllers.GetOneLesson)
	api.Put("/modules/:moduleId/lessons/:lessonId", validators.Lesson(), controllers.UpdateLesson)
	api.Delete("/modules/:moduleId/lessons/:lessonId", controllers.DeleteLesson)

	// Subscriptions
	api.Get("/courses/:courseId/users", controllers.GetAllUsersByCourse)
	api.Post("/courses/:courseId/users/subscription", validators.Subscription(), controllers.SaveSubscriptionUserInCourse)
}
