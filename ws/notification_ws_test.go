package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"preorder/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T) (*NotificationHub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := NewNotificationHub()
	r := gin.New()
	r.GET("/ws/notifications", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, email string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notifications?email=" + email
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_DeliversToRecipientOnly(t *testing.T) {
	hub, srv := newHubServer(t)
	alice := dial(t, srv, "A@x.com")
	bob := dial(t, srv, "b@x.com")
	require.Eventually(t, func() bool {
		return hub.Connected("a@x.com") == 1 && hub.Connected("b@x.com") == 1
	}, time.Second, 10*time.Millisecond)

	n := &entity.Notification{ID: 1, OrderID: "o1", StudentEmail: "a@x.com", Message: "ready"}
	require.NoError(t, hub.Deliver(context.Background(), n))

	_ = alice.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := alice.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Kind         string              `json:"kind"`
		Notification entity.Notification `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "notification.created", msg.Kind)
	assert.Equal(t, "ready", msg.Notification.Message)

	_ = bob.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = bob.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregistersOnClose(t *testing.T) {
	hub, srv := newHubServer(t)
	conn := dial(t, srv, "a@x.com")
	require.Eventually(t, func() bool { return hub.Connected("a@x.com") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Connected("a@x.com") == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_RequiresEmail(t *testing.T) {
	_, srv := newHubServer(t)

	res, err := http.Get(srv.URL + "/ws/notifications")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestHub_DeliverWithoutListeners(t *testing.T) {
	hub := NewNotificationHub()
	assert.NoError(t, hub.Deliver(context.Background(), &entity.Notification{StudentEmail: "nobody@x.com"}))
}
