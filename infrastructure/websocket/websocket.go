package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"roomies-api/pkg/logger"
)

// Manager ดูแล websocket connections ของสมาชิกบ้าน
// 1 user = 1 connection (connection ใหม่เตะอันเก่าออก)
type Manager struct {
	clients         map[*websocket.Conn]Client
	userConnections map[uuid.UUID]*websocket.Conn
	register        chan Client
	unregister      chan *websocket.Conn
	broadcast       chan Message
	mutex           sync.RWMutex
}

type Client struct {
	Conn   *websocket.Conn
	UserID uuid.UUID
}

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewManager() *Manager {
	m := &Manager{
		clients:         make(map[*websocket.Conn]Client),
		userConnections: make(map[uuid.UUID]*websocket.Conn),
		register:        make(chan Client),
		unregister:      make(chan *websocket.Conn),
		broadcast:       make(chan Message),
	}
	go m.run()
	return m
}

func (m *Manager) run() {
	for {
		select {
		case client := <-m.register:
			m.mutex.Lock()

			// ปิด connection เก่าของ user เดียวกัน (กัน duplicate จาก StrictMode/reconnect)
			if oldConn, exists := m.userConnections[client.UserID]; exists {
				delete(m.clients, oldConn)
				oldConn.Close()
			}

			m.clients[client.Conn] = client
			m.userConnections[client.UserID] = client.Conn
			m.mutex.Unlock()

			logger.Debug("WebSocket client connected", "user_id", client.UserID)

		case conn := <-m.unregister:
			m.mutex.Lock()
			if client, ok := m.clients[conn]; ok {
				delete(m.clients, conn)
				if currentConn, exists := m.userConnections[client.UserID]; exists && currentConn == conn {
					delete(m.userConnections, client.UserID)
				}
				conn.Close()
				logger.Debug("WebSocket client disconnected", "user_id", client.UserID)
			}
			m.mutex.Unlock()

		case message := <-m.broadcast:
			m.mutex.RLock()
			for conn := range m.clients {
				m.sendMessage(conn, message)
			}
			m.mutex.RUnlock()
		}
	}
}

func (m *Manager) sendMessage(conn *websocket.Conn, message Message) {
	data, err := json.Marshal(message)
	if err != nil {
		logger.Warn("Failed to marshal websocket message", "error", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logger.Debug("Failed to write websocket message", "error", err)
	}
}

// Register ลงทะเบียน connection ของ user
func (m *Manager) Register(conn *websocket.Conn, userID uuid.UUID) {
	m.register <- Client{Conn: conn, UserID: userID}
}

// Unregister ถอด connection ออก
func (m *Manager) Unregister(conn *websocket.Conn) {
	m.unregister <- conn
}

// Broadcast ส่ง message ไปทุก connection
func (m *Manager) Broadcast(messageType string, data interface{}) {
	m.broadcast <- Message{Type: messageType, Data: data}
}

// ClientCount จำนวน connection ที่ต่ออยู่
func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}
