package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentDTO "bcaroutine_backend/internals/features/content/dto"
)

func receive(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func TestHub_PublishReachesEveryClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c1 := &Client{hub: hub, send: make(chan []byte, 16)}
	c2 := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.register <- c1
	hub.register <- c2

	hub.Publish(EventContentUpdated, map[string]string{"section": "notice", "content": "Exam on Friday"})

	for _, c := range []*Client{c1, c2} {
		var ev Event
		require.NoError(t, json.Unmarshal(receive(t, c.send), &ev))
		assert.Equal(t, EventContentUpdated, ev.Type)

		payload, ok := ev.Payload.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "notice", payload["section"])
	}
}

func TestHub_ContentEventPayloadShape(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.register <- c

	stamp := time.Now().Format(time.RFC3339)
	hub.Publish(EventContentUpdated, contentDTO.ContentEvent{
		Section:   "notice",
		Content:   "Exam on Friday",
		UpdatedAt: stamp,
	})

	var ev struct {
		Type    string                  `json:"type"`
		Payload contentDTO.ContentEvent `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(receive(t, c.send), &ev))
	assert.Equal(t, EventContentUpdated, ev.Type)
	assert.Equal(t, "notice", ev.Payload.Section)
	assert.Equal(t, "Exam on Friday", ev.Payload.Content)
	assert.Equal(t, stamp, ev.Payload.UpdatedAt)
}

func TestHub_UnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.register <- c
	hub.unregister <- c

	// The hub closes the channel on unregister.
	select {
	case _, open := <-c.send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHub_SlowConsumerIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := &Client{hub: hub, send: make(chan []byte)} // unbuffered, never read
	fast := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.register <- slow
	hub.register <- fast

	hub.Publish(EventFileDeleted, map[string]string{"file_id": "abc"})

	receive(t, fast.send)
	select {
	case _, open := <-slow.send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("slow client was not dropped")
	}
}
