package routes

import (
	"github.com/gofiber/fiber/v2"

	"roomies-api/interfaces/api/handlers"
	"roomies-api/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, deps Deps) {
	auth := api.Group("/auth")
	auth.Post("/login", h.AuthHandler.Login)
	auth.Get("/me", middleware.Protected(deps.Auth), h.AuthHandler.Me)
}
