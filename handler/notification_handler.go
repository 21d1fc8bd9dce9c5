package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"rentify-api/dto/req"
	"rentify-api/dto/res"
	"rentify-api/entity"
	"rentify-api/usecase"
)

type NotificationHandler struct {
	usecase.NotificationUsecase
	*logrus.Logger
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{NotificationUsecase: notificationUsecase, Logger: logger}
}

// GetNotifications handles GET /api/v1/notifications.
func (handler *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	notifications, err := handler.NotificationUsecase.GetAllNotifications(c.Context())
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to fetch notifications")
		return writeError(c, err)
	}

	response := res.CommonResponse[[]entity.Notification]{
		Message:    "Successfully to get notifications",
		StatusCode: fiber.StatusOK,
		Data:       notifications,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// MarkNotificationRead handles PATCH /api/v1/notifications.
func (handler *NotificationHandler) MarkNotificationRead(c *fiber.Ctx) error {
	payload := new(req.MarkNotificationRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	updated, err := handler.NotificationUsecase.MarkNotificationRead(c.Context(), payload.NotificationID)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to update notification %s", payload.NotificationID)
		return writeError(c, err)
	}

	response := res.CommonResponse[entity.Notification]{
		Message:    "Successfully to update notification",
		StatusCode: fiber.StatusOK,
		Data:       updated,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// GetInterestedOwners handles GET /api/v1/notifications/user, the merged
// feed of notifications and read messages for the acting user.
func (handler *NotificationHandler) GetInterestedOwners(c *fiber.Ctx) error {
	userID, err := actorID(c)
	if err != nil {
		return writeError(c, err)
	}

	entries, err := handler.NotificationUsecase.GetInterestedOwners(c.Context(), userID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to fetch interested property owners")
		return writeError(c, err)
	}

	response := res.CommonResponse[[]res.FeedEntry]{
		Message:    "Successfully to get interested property owners",
		StatusCode: fiber.StatusOK,
		Data:       entries,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}
