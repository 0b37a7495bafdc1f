package ws

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_NoSubscribers(t *testing.T) {
	h := NewHub()
	assert.NoError(t, h.Publish(TopicWishlist, map[string]string{"type": "wishlist_published"}))
	assert.Zero(t, h.Count(TopicWishlist))
}

func TestPublish_Unencodable(t *testing.T) {
	h := NewHub()
	assert.Error(t, h.Publish(TopicWishlist, make(chan int)))
}

// dialTopic joins a fresh connection to topic via a throwaway server.
func dialTopic(t *testing.T, h *Hub, topic string) *websocket.Conn {
	t.Helper()

	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.Join(topic, conn)
		defer func() {
			h.Leave(topic, conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestBroadcast_TopicIsolation(t *testing.T) {
	h := NewHub()
	a := dialTopic(t, h, "a")
	b := dialTopic(t, h, "b")

	require.Eventually(t, func() bool { return h.Count("a") == 1 && h.Count("b") == 1 }, 2*time.Second, 10*time.Millisecond)

	h.Broadcast("a", []byte("hello"))

	_ = a.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := a.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(msg))

	_ = b.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = b.ReadMessage()
	var ne net.Error
	require.ErrorAs(t, err, &ne)
	assert.True(t, ne.Timeout())
}
