package routes

import (
	"github.com/gofiber/fiber/v2"

	"rentify-api/handler"
	"rentify-api/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.MessageHandler
	*handler.NotificationHandler
	*handler.EmailHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected)
	app.Use(rc.Middleware.ExtractUserID)

	app.Get("/auth/me", rc.UserHandler.GetUserByToken)

	app.Get("/users", rc.UserHandler.GetAllUsers)

	app.Post("/messages", rc.MessageHandler.CreateMessage)
	app.Get("/messages", rc.MessageHandler.GetMessages)
	app.Patch("/messages/:id", rc.MessageHandler.UpdateMessage)
	app.Delete("/messages/:id", rc.MessageHandler.DeleteMessage)

	app.Get("/notifications", rc.NotificationHandler.GetNotifications)
	app.Patch("/notifications", rc.NotificationHandler.MarkNotificationRead)
	app.Get("/notifications/user", rc.NotificationHandler.GetInterestedOwners)

	app.Post("/send-email", rc.EmailHandler.SendDecisionEmail)
}
