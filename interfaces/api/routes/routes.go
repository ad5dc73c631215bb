package routes

import (
	"github.com/gofiber/fiber/v2"

	wsmanager "roomies-api/infrastructure/websocket"
	"roomies-api/interfaces/api/handlers"
	"roomies-api/interfaces/api/middleware"
)

// Deps คือของที่ route setup ต้องใช้นอกเหนือจาก handlers
type Deps struct {
	Auth      middleware.AuthDeps
	WSManager *wsmanager.Manager
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, deps Deps) {
	SetupHealthRoutes(app)
	SetupPageRoutes(app, h, deps)

	// JSON API ไม่บังคับ auth (สอดคล้องกับ session flow ที่คุมเฉพาะหน้า HTML)
	api := app.Group("/api")

	SetupAuthRoutes(api, h, deps)
	SetupUserRoutes(api, h)
	SetupTaskRoutes(api, h)

	SetupWebSocketRoutes(app, deps)
}
