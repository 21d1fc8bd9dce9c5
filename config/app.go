package config

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"rentify-api/config/common"
	"rentify-api/config/logger"
	"rentify-api/handler"
	"rentify-api/mail"
	"rentify-api/middleware"
	"rentify-api/repository"
	"rentify-api/routes"
	"rentify-api/security"
	"rentify-api/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	Redis  *redis.Client
	Mailer mail.Mailer
	AppLog *logger.AppLogger
	JWT    *security.JWT
	*middleware.Middleware
}

func NewValidator() *validator.Validate {
	return validator.New()
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	appLog := logger.NewLogger()
	log := logrus.New()
	newDB := NewDB(newConfig, appLog)
	newRedis := NewRedis(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMailer := mail.NewSmtpMailer(newConfig, appLog)
	newMiddleware := middleware.NewMiddleware(newConfig, log, newJWT)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		DBConfig:   newDB,
		Redis:      newRedis,
		Mailer:     newMailer,
		AppLog:     appLog,
		JWT:        newJWT,
		Middleware: newMiddleware,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		_ = app.Shutdown()
	}()

	if err := app.Listen(":7720"); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}

	if err := newDB.Close(); err != nil {
		log.WithError(err).Error("Failed to close database pool")
	}
	if err := newRedis.Close(); err != nil {
		log.WithError(err).Error("Failed to close redis client")
	}
}

func App(aC *AppConfig) {
	newAuthRepository := repository.NewAuthRepository()
	newUserRepository := repository.NewUserRepository()
	newPropertyRepository := repository.NewPropertyRepository()
	newMessageRepository := repository.NewMessageRepository(aC.GetDB())
	newNotificationRepository := repository.NewNotificationRepository(aC.Redis)

	newAuthUsecase := usecase.NewAuthUsecase(newAuthRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.AppLog, aC.JWT)
	newMessageUsecase := usecase.NewMessageUsecase(
		newMessageRepository,
		newNotificationRepository,
		newPropertyRepository,
		aC.GetDB(),
		aC.Mailer,
		aC.Validate,
		aC.Logger,
	)
	newNotificationUsecase := usecase.NewNotificationUsecase(
		newNotificationRepository,
		newMessageRepository,
		aC.Mailer,
		aC.Logger,
	)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newMessageHandler := handler.NewMessageHandler(newMessageUsecase, aC.Logger)
	newNotificationHandler := handler.NewNotificationHandler(newNotificationUsecase, aC.Logger)
	newEmailHandler := handler.NewEmailHandler(aC.Mailer, aC.Validate, aC.Logger)

	route := routes.ConfigRoute{
		App:                 aC.App,
		Middleware:          aC.Middleware,
		AuthHandler:         newAuthHandler,
		UserHandler:         newUserHandler,
		MessageHandler:      newMessageHandler,
		NotificationHandler: newNotificationHandler,
		EmailHandler:        newEmailHandler,
	}
	route.GetRoute()
}
