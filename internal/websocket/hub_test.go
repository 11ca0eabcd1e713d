package websocket

import "testing"

func TestPublishNeverBlocksWithoutConsumers(t *testing.T) {
	hub := NewHub() // Run is intentionally not started

	// Fill the event buffer and then some; Publish must drop, not block.
	for i := 0; i < 64; i++ {
		hub.Publish(Event{Type: "live_update", ID: uint(i), Text: "x"})
	}
}

func TestEventEncodeOmitsEmptyText(t *testing.T) {
	payload := Event{Type: "notification_deleted", ID: 7}.encode()
	if payload == nil {
		t.Fatalf("encode returned nil for valid event")
	}
	if string(payload) != `{"type":"notification_deleted","id":7}` {
		t.Fatalf("unexpected encoding: %s", payload)
	}
}
