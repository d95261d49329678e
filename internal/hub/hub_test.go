package hub

import (
	"encoding/json"
	"testing"
	"time"

	"tickerfeed/internal/model"
)

func testUpdate(symbol, price string) model.TickerUpdate {
	return model.TickerUpdate{
		Symbol:    symbol,
		Price:     price,
		EventTime: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	h := NewHub(16, nil)
	defer h.Close()

	subs := []*Subscriber{h.Join(), h.Join(), h.Join()}

	h.Publish(testUpdate("BTCUSDT", "50000.00"))

	var first []byte
	for i, sub := range subs {
		select {
		case payload := <-sub.Updates():
			if i == 0 {
				first = payload
			} else if string(payload) != string(first) {
				t.Errorf("subscriber %d got %s, want identical payload %s", i, payload, first)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d received nothing", i)
		}
	}

	var got frame
	if err := json.Unmarshal(first, &got); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if got.Symbol != "BTCUSDT" || got.Price != "50000.00" {
		t.Errorf("frame = %+v, want BTCUSDT/50000.00", got)
	}
	if got.EventTime != "2024-01-15T12:00:00Z" {
		t.Errorf("EventTime = %s, want 2024-01-15T12:00:00Z", got.EventTime)
	}
}

func TestHub_LateJoinerMissesEarlierPublish(t *testing.T) {
	h := NewHub(16, nil)
	defer h.Close()

	h.Publish(testUpdate("BTCUSDT", "50000.00"))
	sub := h.Join()

	select {
	case payload := <-sub.Updates():
		t.Errorf("late joiner received %s, want nothing", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_LeaveStopsDelivery(t *testing.T) {
	h := NewHub(16, nil)
	defer h.Close()

	sub := h.Join()
	h.Leave(sub)
	h.Publish(testUpdate("BTCUSDT", "50000.00"))

	// Channel is closed on leave; it must yield no payloads.
	if payload, ok := <-sub.Updates(); ok {
		t.Errorf("left subscriber received %s, want closed channel", payload)
	}
	if h.Count() != 0 {
		t.Errorf("Count() = %d, want 0", h.Count())
	}
}

func TestHub_LeaveIsIdempotent(t *testing.T) {
	h := NewHub(16, nil)
	defer h.Close()

	sub := h.Join()
	h.Leave(sub)
	h.Leave(sub) // must not panic on double close
}

func TestHub_FIFOPerSubscriber(t *testing.T) {
	h := NewHub(16, nil)
	defer h.Close()

	sub := h.Join()
	prices := []string{"1.00", "2.00", "3.00", "4.00"}
	for _, p := range prices {
		h.Publish(testUpdate("BTCUSDT", p))
	}

	for i, want := range prices {
		select {
		case payload := <-sub.Updates():
			var got frame
			if err := json.Unmarshal(payload, &got); err != nil {
				t.Fatalf("bad payload: %v", err)
			}
			if got.Price != want {
				t.Errorf("message %d price = %s, want %s (publish order)", i, got.Price, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("missing message %d", i)
		}
	}
}

func TestHub_SlowSubscriberIsDroppedNotBlocking(t *testing.T) {
	h := NewHub(2, nil)
	defer h.Close()

	slow := h.Join() // never read
	fast := h.Join()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Overflow the slow subscriber's queue of 2.
		for i := 0; i < 5; i++ {
			h.Publish(testUpdate("BTCUSDT", "50000.00"))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on slow subscriber")
	}

	// Fast subscriber still got deliveries until its own queue filled.
	select {
	case _, ok := <-fast.Updates():
		if !ok {
			t.Fatal("fast subscriber was dropped")
		}
	case <-time.After(time.Second):
		t.Fatal("fast subscriber received nothing")
	}

	// Slow subscriber was removed and its channel drained then closed.
	if h.Count() != 1 {
		t.Errorf("Count() = %d, want 1 after slow subscriber dropped", h.Count())
	}
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-slow.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("slow subscriber channel never closed")
		}
	}
}

func TestHub_CloseClosesAllSubscribers(t *testing.T) {
	h := NewHub(16, nil)
	a, b := h.Join(), h.Join()

	h.Close()

	for i, sub := range []*Subscriber{a, b} {
		if _, ok := <-sub.Updates(); ok {
			t.Errorf("subscriber %d channel still open after Close", i)
		}
	}

	// Joining a closed hub yields an immediately-closed channel.
	late := h.Join()
	if _, ok := <-late.Updates(); ok {
		t.Error("join after Close returned an open channel")
	}
}
