package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	wsmanager "roomies-api/infrastructure/websocket"
	"roomies-api/pkg/logger"
	"roomies-api/pkg/utils"
)

// WebSocketHandler ดูแล lifecycle ของ /ws connection (live task feed)
type WebSocketHandler struct {
	manager *wsmanager.Manager
}

func NewWebSocketHandler(manager *wsmanager.Manager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket ลงทะเบียน connection แล้วค้าง read loop ไว้จนฝั่ง client ปิด
// ต้องผ่าน Protected middleware มาก่อน เลยมี user ใน locals เสมอ
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	userCtx, ok := c.Locals("user").(*utils.UserContext)
	if !ok {
		logger.Warn("WebSocket connection without user context")
		c.Close()
		return
	}

	h.manager.Register(c, userCtx.ID)
	defer h.manager.Unregister(c)

	// feed เป็นขาออกอย่างเดียว read loop มีไว้จับตอน disconnect
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
