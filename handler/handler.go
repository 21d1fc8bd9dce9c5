package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rentify-api/dto/res"
	"rentify-api/usecase"
)

// errorStatus maps the usecase failure taxonomy onto HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	return c.Status(status).JSON(res.ErrorResponse{
		Status:     fiber.NewError(status).Message,
		StatusCode: status,
		Error:      err.Error(),
	})
}

func actorID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", usecase.ErrUnauthorized
	}
	return userID, nil
}
