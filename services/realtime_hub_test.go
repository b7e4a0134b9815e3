package services_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/services"
)

func newHubServer(t *testing.T, hub *services.RealtimeHub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(&services.WSClient{Conn: conn})
	}))
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *services.RealtimeHub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() < n {
		if time.Now().After(deadline) {
			t.Fatalf("only %d of %d clients registered", hub.ClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcastReachesAllClients(t *testing.T) {
	hub := services.NewRealtimeHub()
	ts := newHubServer(t, hub)

	c1 := dial(t, ts)
	c2 := dial(t, ts)
	waitForClients(t, hub, 2)

	hub.Broadcast("new_alert", map[string]any{"id": "a1", "type": "Fire"})

	for _, conn := range []*websocket.Conn{c1, c2} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)

		var ev struct {
			Event string         `json:"event"`
			Data  map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg, &ev))
		require.Equal(t, "new_alert", ev.Event)
		require.Equal(t, "a1", ev.Data["id"])
	}
}

func TestBroadcastWithNoClientsIsANoOp(t *testing.T) {
	hub := services.NewRealtimeHub()
	// must not panic or block
	hub.Broadcast("remove_alert", map[string]any{"id": "a1"})
	require.Equal(t, 0, hub.ClientCount())
}

func TestUnregisteredClientMissesEvents(t *testing.T) {
	hub := services.NewRealtimeHub()
	ts := newHubServer(t, hub)

	c1 := dial(t, ts)
	waitForClients(t, hub, 1)

	c1.Close()
	// dropped clients get cleaned up on the next write failure
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() > 0 {
		hub.Broadcast("alert_resolved", map[string]any{"id": "a1"})
		if time.Now().After(deadline) {
			t.Fatal("closed client never dropped from hub")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
