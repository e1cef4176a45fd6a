package stream

import (
	"encoding/json"
	"net/http"
	"sync"

	applogger "GridPulse/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Envelope is the frame sent to WebSocket clients.
type Envelope struct {
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}

// Hub fans broadcast frames out to connected WebSocket clients. Slow clients
// are dropped rather than buffered without bound.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	logger   *applogger.Logger
	upgrader websocket.Upgrader
}

func NewHub(l *applogger.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  l,
		upgrader: websocket.Upgrader{
			// The dashboard is served from another origin in the demo setup.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades an Echo request and registers the client until it
// disconnects. Inbound frames are read and discarded to process control
// messages.
func (h *Hub) HandleWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	if h.logger != nil {
		h.logger.Info("ws client connected", applogger.Int("clients", count))
	}

	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return nil
}

// Broadcast sends one frame to every connected client.
func (h *Hub) Broadcast(topic string, data interface{}) {
	payload, err := json.Marshal(Envelope{Topic: topic, Data: data})
	if err != nil {
		if h.logger != nil {
			h.logger.Error("ws marshal error", applogger.Error(err))
		}
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	_ = conn.Close()
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}
