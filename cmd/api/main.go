package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"roomies-api/interfaces/api/handlers"
	"roomies-api/interfaces/api/middleware"
	"roomies-api/interfaces/api/routes"
	"roomies-api/pkg/di"
	"roomies-api/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// ยังไม่มี logger ตอน init พัง
		panic("Failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      container.GetConfig().App.Name,
	})

	// ลำดับ middleware สำคัญ: request id ต้องมาก่อน logger
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())

	// เสิร์ฟ avatar ที่เก็บแบบ local
	if container.GetConfig().Storage.Type != "s3" {
		app.Static("/files", container.GetConfig().Storage.BasePath)
	}

	services := container.GetHandlerServices()
	h := handlers.NewHandlers(services)

	routes.SetupRoutes(app, h, routes.Deps{
		Auth: middleware.AuthDeps{
			Users:         container.UserService,
			Sessions:      container.SessionService,
			JWTSecret:     container.GetConfig().JWT.Secret,
			SessionCookie: container.GetConfig().Session.CookieName,
		},
		WSManager: container.WSManager,
	})

	port := container.GetConfig().App.Port
	logger.Info("Server starting",
		"port", port,
		"env", container.GetConfig().App.Env,
		"app", container.GetConfig().App.Name,
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
