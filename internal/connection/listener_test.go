package connection

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"tickerfeed/internal/snapshot"
)

func testListener(url string, table *snapshot.Table) *Listener {
	return NewListener(ListenerConfig{
		BaseURL:        url,
		Symbols:        []string{"btcusdt"},
		ReconnectDelay: 10 * time.Millisecond,
	}, table, nil)
}

func waitForEntries(t *testing.T, table *snapshot.Table, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for table.Len() < n {
		if time.Now().After(deadline) {
			t.Fatalf("table has %d entries, want %d", table.Len(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestListener_UpsertsDecodedFrames(t *testing.T) {
	server := mockWSServer(t, func(conn *websocket.Conn) {
		frames := []string{
			`{"data":{"s":"BTCUSDT","c":"50000.00","E":1705320000000}}`,
			`{"data":{"s":"ETHUSDT","c":"3000.00","E":1705320001000}}`,
		}
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer server.Close()

	table := snapshot.NewTable()
	listener := testListener(wsURL(server), table)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		listener.Run(ctx)
		close(done)
	}()

	waitForEntries(t, table, 2)

	drained := table.Drain()
	if drained["BTCUSDT"].Price != "50000.00" {
		t.Errorf("BTCUSDT price = %s, want 50000.00", drained["BTCUSDT"].Price)
	}
	if drained["ETHUSDT"].Price != "3000.00" {
		t.Errorf("ETHUSDT price = %s, want 3000.00", drained["ETHUSDT"].Price)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop after cancel")
	}
}

func TestListener_DropsRejectedFramesAndContinues(t *testing.T) {
	server := mockWSServer(t, func(conn *websocket.Conn) {
		frames := []string{
			`{"invalid":"format"}`,
			`not json`,
			`{"data":{"s":"BTCUSDT","c":"50000.00","E":1705320000000}}`,
		}
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer server.Close()

	table := snapshot.NewTable()
	listener := testListener(wsURL(server), table)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go listener.Run(ctx)

	waitForEntries(t, table, 1)

	drained := table.Drain()
	if len(drained) != 1 {
		t.Errorf("drained %d entries, want 1 (rejected frames dropped)", len(drained))
	}
}

func TestListener_ReconnectsAfterRemoteClose(t *testing.T) {
	var conns atomic.Int64

	server := mockWSServer(t, func(conn *websocket.Conn) {
		n := conns.Add(1)
		if n == 1 {
			// Drop the first connection immediately.
			return
		}
		conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"data":{"s":"BTCUSDT","c":"50001.00","E":1705320002000}}`))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer server.Close()

	table := snapshot.NewTable()
	listener := testListener(wsURL(server), table)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go listener.Run(ctx)

	waitForEntries(t, table, 1)

	if conns.Load() < 2 {
		t.Errorf("connection count = %d, want >= 2 (reconnect)", conns.Load())
	}
	if got := table.Drain()["BTCUSDT"].Price; got != "50001.00" {
		t.Errorf("price after reconnect = %s, want 50001.00", got)
	}
}

func TestListener_RunReturnsOnCancelWhileUnreachable(t *testing.T) {
	table := snapshot.NewTable()
	listener := NewListener(ListenerConfig{
		BaseURL:        "ws://127.0.0.1:1",
		Symbols:        []string{"btcusdt"},
		ReconnectDelay: 10 * time.Millisecond,
	}, table, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- listener.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
