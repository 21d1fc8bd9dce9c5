package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"rentify-api/dto/req"
	"rentify-api/mail"
)

type EmailHandler struct {
	Mailer mail.Mailer
	*validator.Validate
	*logrus.Logger
}

func NewEmailHandler(mailer mail.Mailer, validate *validator.Validate, logger *logrus.Logger) *EmailHandler {
	return &EmailHandler{Mailer: mailer, Validate: validate, Logger: logger}
}

// SendDecisionEmail handles POST /api/v1/send-email, the templated
// application approve/decline notice sent by property owners.
func (handler *EmailHandler) SendDecisionEmail(c *fiber.Ctx) error {
	payload := new(req.DecisionEmailRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := handler.Validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	email := mail.DecisionEmail(payload.To, payload.Subject, payload.PropertyAddress, payload.IsApproved, payload.CustomMessage)
	if err := handler.Mailer.Send(c.Context(), email); err != nil {
		handler.Logger.WithError(err).Error("Failed to send email")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send email",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
