package routes

import (
	"github.com/gofiber/fiber/v2"

	"roomies-api/interfaces/api/handlers"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers) {
	users := api.Group("/users")
	users.Post("/", h.UserHandler.CreateUser)
	users.Get("/", h.UserHandler.ListUsers)
	users.Get("/:id", h.UserHandler.GetUser)
	users.Patch("/:id", h.UserHandler.UpdateUser)
	users.Delete("/:id", h.UserHandler.DeleteUser)
	users.Put("/:id/avatar", h.UserHandler.UploadAvatar)
}
