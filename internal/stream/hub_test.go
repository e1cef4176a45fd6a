package stream

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

func wsServer(t *testing.T, hub *Hub) (*httptest.Server, string) {
	t.Helper()
	e := echo.New()
	e.GET("/ws", hub.HandleWS)
	srv := httptest.NewServer(e)
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, got %d", n, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcastNoClients(t *testing.T) {
	hub := NewHub(nil)
	// Must not panic or block with nobody connected.
	hub.Broadcast("energy-prices", map[string]int{"x": 1})
	if hub.ClientCount() != 0 {
		t.Fatalf("expected no clients")
	}
	hub.Close()
}

func TestBroadcastReachesClient(t *testing.T) {
	hub := NewHub(nil)
	srv, url := wsServer(t, hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.Broadcast("energy-prices", map[string]float64{"price": 50.5})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Topic != "energy-prices" {
		t.Fatalf("unexpected topic %s", env.Topic)
	}
}

func TestCloseDisconnectsClients(t *testing.T) {
	hub := NewHub(nil)
	srv, url := wsServer(t, hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.Close()
	if hub.ClientCount() != 0 {
		t.Fatalf("expected no clients after close")
	}
}
