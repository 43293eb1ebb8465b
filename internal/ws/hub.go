// Package ws delivers live notification events to connected clients. The hub
// is owned by main and passed to whoever needs it; there is no package-level
// connection handle.
package ws

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/Jannadolf/LookNest/internal/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  4 * 1024,
	WriteBufferSize: 4 * 1024,
}

// Event is the envelope pushed to clients.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type client struct {
	conn      *websocket.Conn
	sessionID string
	mu        sync.Mutex // serializes writes on the connection
}

// Hub tracks the open notification channels per user. A user may be
// connected from several devices at once.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*client]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[*client]struct{})}
}

// Handler upgrades the request to a WebSocket and keeps the connection
// registered until the client disconnects. The bearer token is taken from
// the "token" query parameter or the Authorization header.
func (h *Hub) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := c.QueryParam("token")
		if tokenString == "" {
			authHeader := c.Request().Header.Get("Authorization")
			if after, ok := cutBearer(authHeader); ok {
				tokenString = after
			}
		}
		if tokenString == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
		}

		claims, err := middleware.ParseToken(tokenString)
		if err != nil {
			return err
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("failed to upgrade the websocket", "error", err)
			return err
		}
		defer conn.Close()

		cl := &client{conn: conn, sessionID: uuid.New().String()}
		h.register(claims.UserID, cl)
		defer h.unregister(claims.UserID, cl)
		slog.Info("Websocket client connected", "userID", claims.UserID, "sessionID", cl.sessionID)

		if err := cl.send(Event{Event: "session_created", Data: map[string]string{"sessionId": cl.sessionID}}); err != nil {
			return nil
		}

		// Read loop: the client sends nothing we act on, but reading is how
		// we notice the disconnect.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				slog.Info("Websocket client disconnected", "userID", claims.UserID, "sessionID", cl.sessionID)
				return nil
			}
		}
	}
}

// Push sends an event to every open connection of the user. Persistence is
// the source of truth; delivery failures are logged and dropped.
func (h *Hub) Push(userID uint, data any) {
	h.mu.RLock()
	conns := make([]*client, 0, len(h.clients[userID]))
	for cl := range h.clients[userID] {
		conns = append(conns, cl)
	}
	h.mu.RUnlock()

	for _, cl := range conns {
		if err := cl.send(Event{Event: "notification", Data: data}); err != nil {
			slog.Warn("Failed to push notification over websocket", "userID", userID, "sessionID", cl.sessionID, "error", err)
		}
	}
}

// ConnectionCount returns how many connections the user currently has.
func (h *Hub) ConnectionCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) register(userID uint, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*client]struct{})
	}
	h.clients[userID][cl] = struct{}{}
}

func (h *Hub) unregister(userID uint, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[userID], cl)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

func (c *client) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func cutBearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):], true
	}
	return "", false
}
