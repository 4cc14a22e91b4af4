package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"preorder/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const pingInterval = 25 * time.Second

// NotificationHub fans committed notifications out to the recipient's open sockets.
type NotificationHub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{} // email -> set of connections
}

type client struct {
	email string
	conn  *websocket.Conn
	wmu   sync.Mutex // gorilla allows one concurrent writer
}

func (c *client) write(msgType int, data []byte) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(msgType, data)
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{clients: make(map[string]map[*client]struct{})}
}

func (h *NotificationHub) register(c *client) {
	h.mu.Lock()
	if h.clients[c.email] == nil {
		h.clients[c.email] = make(map[*client]struct{})
	}
	h.clients[c.email][c] = struct{}{}
	h.mu.Unlock()
}

func (h *NotificationHub) unregister(c *client) {
	h.mu.Lock()
	if set := h.clients[c.email]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.email)
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// Connected reports how many sockets are open for the email.
func (h *NotificationHub) Connected(email string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[strings.ToLower(email)])
}

func (h *NotificationHub) Name() string { return "websocket" }

// Deliver ส่ง notification ให้ทุก connection ของอีเมลนั้น (ไม่มีใครต่ออยู่ก็ไม่ error)
func (h *NotificationHub) Deliver(_ context.Context, n *entity.Notification) error {
	msg, err := json.Marshal(gin.H{"kind": "notification.created", "notification": n})
	if err != nil {
		return err
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[n.StudentEmail]))
	for c := range h.clients[n.StudentEmail] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(websocket.TextMessage, msg); err != nil {
			log.Printf("ws write error: %v", err)
			h.unregister(c)
		}
	}
	return nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket: GET /ws/notifications?email=
func (h *NotificationHub) HandleWebSocket(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		email = strings.ToLower(c.GetString("email"))
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "email is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	cl := &client{email: email, conn: conn}
	h.register(cl)

	done := make(chan struct{})
	go h.keepAlive(cl, done)

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			h.unregister(cl)
			return
		}
	}
}

func (h *NotificationHub) keepAlive(cl *client, done <-chan struct{}) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			if err := cl.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
