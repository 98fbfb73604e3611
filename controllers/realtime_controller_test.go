package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertsWSDeliversBroadcasts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := services.NewRealtimeHub()
	rtCtl := NewRealtimeController(hub)

	r := gin.New()
	r.GET("/ws", stubAuth(7), rtCtl.AlertsWS)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The server attaches the connection on its own goroutine, so keep
	// broadcasting until the client reads the event through.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		tick := time.NewTicker(10 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tick.C:
				hub.Broadcast(7, gin.H{"kind": "alert.created"})
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), "alert.created")
}

func TestBroadcastSkipsOtherUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := services.NewRealtimeHub()
	rtCtl := NewRealtimeController(hub)

	r := gin.New()
	r.GET("/ws", stubAuth(7), rtCtl.AlertsWS)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Events for another user must never reach this connection.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		tick := time.NewTicker(10 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tick.C:
				hub.Broadcast(8, gin.H{"kind": "alert.created"})
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err, "read should time out without a message")
}
