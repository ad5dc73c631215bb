package routes

import (
	"github.com/gofiber/fiber/v2"

	"roomies-api/interfaces/api/handlers"
	"roomies-api/interfaces/api/middleware"
)

// SetupPageRoutes หน้า HTML + session cookie flow
func SetupPageRoutes(app *fiber.App, h *handlers.Handlers, deps Deps) {
	app.Get("/", middleware.Optional(deps.Auth), h.PageHandler.HomePage)
	app.Get("/login", h.PageHandler.LoginPage)
	app.Post("/login", h.PageHandler.LoginSubmit)
	app.Get("/logout", h.PageHandler.Logout)
	app.Get("/register", h.PageHandler.RegisterPage)
	app.Post("/register", h.PageHandler.RegisterSubmit)
}
