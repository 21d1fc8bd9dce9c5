package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"rentify-api/dto/req"
	"rentify-api/dto/res"
	"rentify-api/usecase"
)

type MessageHandler struct {
	usecase.MessageUsecase
	*logrus.Logger
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{MessageUsecase: messageUsecase, Logger: logger}
}

// CreateMessage handles POST /api/v1/messages, a tenant inquiry about a
// property. The recipient is the property owner.
func (handler *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	userID, err := actorID(c)
	if err != nil {
		return writeError(c, err)
	}

	payload := new(req.CreateMessageRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	messageResponse, err := handler.MessageUsecase.CreateMessage(c.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create message")
		return writeError(c, err)
	}

	response := res.CommonResponse[res.MessageResponse]{
		Message:    "Successfully to create message",
		StatusCode: fiber.StatusOK,
		Data:       messageResponse,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// GetMessages handles GET /api/v1/messages, the owner's inbox of
// inquiries.
func (handler *MessageHandler) GetMessages(c *fiber.Ctx) error {
	userID, err := actorID(c)
	if err != nil {
		return writeError(c, err)
	}

	messages, err := handler.MessageUsecase.GetMessagesForRecipient(c.Context(), userID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get messages")
		return writeError(c, err)
	}

	response := res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully to get messages",
		StatusCode: fiber.StatusOK,
		Data:       messages,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// UpdateMessage handles PATCH /api/v1/messages/:id. Marking a message
// read runs the disclosure workflow; a status change may ride along in
// the same body.
func (handler *MessageHandler) UpdateMessage(c *fiber.Ctx) error {
	userID, err := actorID(c)
	if err != nil {
		return writeError(c, err)
	}

	messageID := c.Params("id")
	payload := new(req.UpdateMessageRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := handler.MessageUsecase.UpdateMessage(c.Context(), messageID, userID, payload); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to update message %s", messageID)
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Message updated successfully",
		"success": true,
	})
}

// DeleteMessage handles DELETE /api/v1/messages/:id.
func (handler *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	userID, err := actorID(c)
	if err != nil {
		return writeError(c, err)
	}

	messageID := c.Params("id")
	if err := handler.MessageUsecase.DeleteMessage(c.Context(), messageID, userID); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to delete message %s", messageID)
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Message deleted successfully",
	})
}
