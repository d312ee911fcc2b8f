// Realtime change feed: edits by one privileged client become visible to
// every connected client without a refresh.
package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

const (
	EventContentUpdated = "content.updated"
	EventFileCreated    = "file.created"
	EventFileDeleted    = "file.deleted"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			n := len(h.clients)
			h.mu.Unlock()
			log.Printf("[INFO] realtime client connected (%d active)", n)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			log.Printf("[INFO] realtime client disconnected (%d active)", n)

		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Slow consumer: drop it rather than block the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish fans an event out to every connected client. Marshal failures are
// logged and dropped; a change event is advisory, never load-bearing.
func (h *Hub) Publish(eventType string, payload interface{}) {
	b, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("[ERROR] realtime marshal: %v", err)
		return
	}
	h.broadcast <- b
}

// Handler serves GET /ws/updates. Clients only listen; inbound frames are
// read and discarded to keep the connection's control frames flowing.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		client := &Client{hub: h, conn: conn, send: make(chan []byte, 16)}
		h.register <- client

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg, ok := <-client.send:
				if !ok {
					_ = conn.WriteMessage(websocket.CloseMessage, nil)
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					h.unregister <- client
					return
				}
			case <-done:
				h.unregister <- client
				return
			}
		}
	}
}
