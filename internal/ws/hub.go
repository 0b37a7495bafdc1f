// internal/ws/hub.go
package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"wishlist/internal/logger"
)

const writeWait = 5 * time.Second

// TopicWishlist carries wishlist publication events.
const TopicWishlist = "wishlist"

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // gorilla allows one concurrent writer per conn
}

type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*websocket.Conn]*client // topic -> 購読中の接続
}

func NewHub() *Hub {
	return &Hub{topics: map[string]map[*websocket.Conn]*client{}}
}

func (h *Hub) Join(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.topics[topic] == nil {
		h.topics[topic] = map[*websocket.Conn]*client{}
	}
	h.topics[topic][conn] = &client{conn: conn}
}

func (h *Hub) Leave(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.topics[topic], conn)
	if len(h.topics[topic]) == 0 {
		delete(h.topics, topic)
	}
}

func (h *Hub) Count(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

func (h *Hub) Broadcast(topic string, payload []byte) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.topics[topic]))
	for _, c := range h.topics[topic] {
		clients = append(clients, c)
	}
	h.mu.RUnlock() // 送信中はロックを持たない

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := c.conn.WriteMessage(websocket.TextMessage, payload)
		c.mu.Unlock()
		if err != nil {
			logger.L().Warn("ws.broadcast_failed", "topic", topic, "error", err)
		}
	}
}

// Publish marshals v as JSON and broadcasts it.
func (h *Hub) Publish(topic string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast(topic, b)
	return nil
}
