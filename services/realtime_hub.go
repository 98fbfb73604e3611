package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const keepaliveInterval = 25 * time.Second

type wsClient struct {
	userID uint
	conn   *websocket.Conn
}

// RealtimeHub fans alert events out to a user's open websocket
// connections and owns their lifecycle: callers hand over an upgraded
// connection via Serve and the hub keeps it alive until the peer goes
// away. A user may hold several connections (phone + web).
type RealtimeHub struct {
	mu     sync.RWMutex
	byUser map[uint][]*wsClient
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{byUser: make(map[uint][]*wsClient)}
}

// Serve attaches an upgraded connection to the hub and blocks until the
// peer disconnects. Periodic pings keep the connection alive through
// intermediaries; the read loop exists only to observe the close.
func (h *RealtimeHub) Serve(userID uint, conn *websocket.Conn) {
	c := &wsClient{userID: userID, conn: conn}
	h.attach(c)
	defer h.detach(c)

	done := make(chan struct{})
	defer close(done)
	go h.keepalive(c, done)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *RealtimeHub) keepalive(c *wsClient, done <-chan struct{}) {
	t := time.NewTicker(keepaliveInterval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.conn.Close() // unblocks the read loop
				return
			}
		}
	}
}

func (h *RealtimeHub) attach(c *wsClient) {
	h.mu.Lock()
	h.byUser[c.userID] = append(h.byUser[c.userID], c)
	h.mu.Unlock()
}

func (h *RealtimeHub) detach(c *wsClient) {
	h.mu.Lock()
	conns := h.byUser[c.userID]
	for i, other := range conns {
		if other == c {
			h.byUser[c.userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.byUser[c.userID]) == 0 {
		delete(h.byUser, c.userID)
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// Broadcast sends a payload to every connection of one user. Write errors
// are ignored; the owning Serve loop notices a dead connection and
// detaches it.
func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.byUser[userID] {
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
	}
}
