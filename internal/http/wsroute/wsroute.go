package wsroute

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"wishlist/internal/logger"
	"wishlist/internal/ws"
)

type Deps struct {
	Hub            *ws.Hub
	AllowedOrigins []string
}

// Register mounts GET /ws. Subscribers receive wishlist events; inbound
// frames are discarded.
func Register(r gin.IRoutes, d Deps) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(r.Header.Get("Origin"), d.AllowedOrigins)
		},
	}

	r.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.L().Debug("ws.upgrade_failed", "error", err)
			return
		}
		d.Hub.Join(ws.TopicWishlist, conn)

		go func() {
			defer func() { d.Hub.Leave(ws.TopicWishlist, conn); conn.Close() }()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	})
}

// originAllowed accepts requests without an Origin header (non-browser
// clients) and browser requests from a configured origin.
func originAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return true
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
