package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"roomies-api/interfaces/api/middleware"
	websocketHandler "roomies-api/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, deps Deps) {
	wsHandler := websocketHandler.NewWebSocketHandler(deps.WSManager)

	// live feed ต้อง auth (JWT หรือ session cookie)
	app.Use("/ws", middleware.Protected(deps.Auth), wsHandler.WebSocketUpgrade)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
