package wsroute

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishlist/internal/ws"
)

func newServer(t *testing.T, hub *ws.Hub) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	Register(r, Deps{Hub: hub, AllowedOrigins: []string{"http://app.example"}})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestSubscribeAndReceive(t *testing.T) {
	hub := ws.NewHub()
	url := newServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count(ws.TopicWishlist) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(ws.TopicWishlist, map[string]string{"type": "wishlist_published"}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"wishlist_published"}`, string(msg))

	hub.Broadcast("other", []byte("ignored"))

	_ = conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = conn.ReadMessage()
	var ne net.Error
	require.ErrorAs(t, err, &ne)
	assert.True(t, ne.Timeout(), "no frame expected from another topic")

	conn.Close()
	require.Eventually(t, func() bool { return hub.Count(ws.TopicWishlist) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestOriginRejected(t *testing.T) {
	url := newServer(t, ws.NewHub())

	header := http.Header{}
	header.Set("Origin", "http://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestOriginAllowed(t *testing.T) {
	assert.True(t, originAllowed("", nil))
	assert.True(t, originAllowed("http://a", []string{"http://a"}))
	assert.True(t, originAllowed("http://b", []string{"*"}))
	assert.False(t, originAllowed("http://b", []string{"http://a"}))
}
