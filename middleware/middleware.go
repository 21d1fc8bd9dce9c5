package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"rentify-api/config/common"
	"rentify-api/dto/res"
	"rentify-api/security"
)

type Middleware struct {
	*common.Config
	*security.JWT
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, logger *logrus.Logger, jwt *security.JWT) *Middleware {
	return &Middleware{Config: config, Log: logger, JWT: jwt}
}

func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	secretKey := middleware.GetJwtConfig()

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: secretKey},
		ContextKey: "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Error("Failed to validate JWT")
			return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
				Status:     fiber.ErrUnauthorized.Message,
				StatusCode: fiber.StatusUnauthorized,
				Error:      "Token is not valid",
			})
		},
	})(c)
}

// ExtractUserID resolves the acting user from the bearer token into
// c.Locals("user_id"). Handlers treat a missing identity as
// Unauthorized.
func (middleware *Middleware) ExtractUserID(c *fiber.Ctx) error {
	authorization := c.Get("Authorization")
	if len(authorization) < 8 {
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Missing Authorization header",
		})
	}

	userID, err := middleware.JWT.GetUserIdFromToken(authorization[7:])
	if err != nil {
		middleware.Log.WithError(err).Error("Failed to extract user ID from token")
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Failed to extract user ID from token",
		})
	}

	c.Locals("user_id", userID)
	return c.Next()
}
