package controllers

import (
	"errors"

	"eadcourse/broker"
	"eadcourse/clients"
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

// GetAllUsersByCourse lists the users subscribed in a course. The
// listing itself is owned by the authuser service; this service only
// checks the course exists and forwards the page window.
func GetAllUsersByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	pagination := specs.ParsePagination(c, "userId", specs.UserSortable)

	page, err := clients.AuthUser.GetAllUsersByCourse(courseID, pagination)
	if err != nil {
		logger.Log.Error("Failed to fetch users from authuser service",
			zap.String("courseId", courseID.String()), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", page)
}

// SaveSubscriptionUserInCourse subscribes a user in a course. All
// business checks run before any write; the unique index on
// (course_id, user_id) closes the race between the duplicate check and
// the insert. The notification publish afterwards is best effort.
func SaveSubscriptionUserInCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedSubscription").(*courseValidator.SubscriptionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := uuid.MustParse(reqData.UserId)

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		logger.Log.Warn("Subscription into missing course", zap.String("courseId", courseID.String()))
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.CourseUser
	err = database.Database.Db.
		Where("course_id = ? AND user_id = ?", courseID, userID).
		First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "User already subscribed in this course!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	if user.UserStatus == models.UserStatusBlocked {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "User is blocked!", nil)
	}

	courseUser := models.CourseUser{
		ID:       uuid.New(),
		CourseID: course.CourseID,
		UserID:   user.UserID,
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&courseUser).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "User already subscribed in this course!", nil)
		}
		logger.Log.Error("Failed to save subscription",
			zap.String("courseId", courseID.String()),
			zap.String("userId", userID.String()),
			zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save subscription!", nil)
	}

	publishSubscriptionNotification(course, user)

	logger.Log.Info("Subscription created",
		zap.String("courseId", course.CourseID.String()),
		zap.String("userId", user.UserID.String()))
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subscription created successfully!", courseUser)
}

// publishSubscriptionNotification hands the welcome notification to the
// broker. Any failure is logged and swallowed: the subscription is
// already durable and must not be rolled back or failed because of it.
func publishSubscriptionNotification(course models.Course, user models.User) {
	if broker.Notifications == nil {
		logger.Log.Warn("Notification publisher disabled, skipping subscription notification",
			zap.String("userId", user.UserID.String()))
		return
	}

	cmd := broker.NotificationCommand{
		Title:   "Welcome to the course: " + course.Name,
		Message: user.FullName + ", your subscription was created successfully!",
		UserID:  user.UserID,
	}
	if err := broker.Notifications.PublishNotificationCommand(cmd); err != nil {
		logger.Log.Warn("Error sending subscription notification",
			zap.String("userId", user.UserID.String()),
			zap.Error(err))
	}
}
