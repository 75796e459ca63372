package ws

import (
	"io"
	"log"
	"testing"
	"time"
)

func quietHub() *Hub {
	h := NewHub(log.New(io.Discard, "", 0))
	go h.Run()
	return h
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestBroadcastDropsStalledClients(t *testing.T) {
	h := quietHub()

	// Stalled clients have an unbuffered send channel and no reader, so
	// every delivery attempt hits the full-buffer branch. More of them
	// than the unregister channel could ever hold.
	for i := 0; i < 70; i++ {
		h.Register(&Client{hub: h, send: make(chan []byte)})
	}
	waitFor(t, func() bool { return h.ClientCount() == 70 })

	healthy := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(healthy)
	waitFor(t, func() bool { return h.ClientCount() == 71 })

	h.Broadcast([]byte(`{"type":"application_submitted"}`))

	waitFor(t, func() bool { return h.ClientCount() == 1 })

	select {
	case msg := <-healthy.send:
		if len(msg) == 0 {
			t.Fatal("healthy client received an empty message")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("healthy client never received the broadcast")
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	h := quietHub()

	client := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(client)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	h.Unregister(client)
	waitFor(t, func() bool { return h.ClientCount() == 0 })

	select {
	case _, open := <-client.send:
		if open {
			t.Fatal("expected the send channel to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send channel was never closed")
	}
}
