// Package websocket pushes flight status changes to open admin screens so
// flight tables update without a manual refresh.
package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kharisma-air/admin-gateway/internal/models"
)

// MessageType represents the type of WebSocket message.
type MessageType string

const (
	MessageTypeStatusChanged MessageType = "status_changed"
	MessageTypeFlightAdded   MessageType = "flight_added"
	MessageTypeFlightRemoved MessageType = "flight_removed"
)

// Message represents a WebSocket message.
type Message struct {
	Type         MessageType         `json:"type"`
	FlightID     string              `json:"flightId"`
	FlightNumber string              `json:"flightNumber,omitempty"`
	Status       models.FlightStatus `json:"status,omitempty"`
	Bookable     bool                `json:"bookable"`
	Timestamp    int64               `json:"timestamp"`
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client represents a WebSocket client connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub manages WebSocket connections for the flight status feed.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	mu         sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			log.Printf("WebSocket: Client registered (total: %d)", len(h.clients))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("WebSocket: Client unregistered (remaining: %d)", len(h.clients))
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				log.Printf("WebSocket: Failed to marshal message: %v", err)
				continue
			}

			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastStatusChange notifies clients that a flight's status flipped.
func (h *Hub) BroadcastStatusChange(f models.Flight) {
	h.broadcast <- &Message{
		Type:         MessageTypeStatusChanged,
		FlightID:     f.ID,
		FlightNumber: f.FlightNumber,
		Status:       f.Status,
		Bookable:     f.Bookable,
		Timestamp:    time.Now().UnixMilli(),
	}
}

// BroadcastFlightAdded notifies clients that a new flight appeared upstream.
func (h *Hub) BroadcastFlightAdded(f models.Flight) {
	h.broadcast <- &Message{
		Type:         MessageTypeFlightAdded,
		FlightID:     f.ID,
		FlightNumber: f.FlightNumber,
		Status:       f.Status,
		Bookable:     f.Bookable,
		Timestamp:    time.Now().UnixMilli(),
	}
}

// BroadcastFlightRemoved notifies clients that a flight disappeared upstream.
func (h *Hub) BroadcastFlightRemoved(flightID string) {
	h.broadcast <- &Message{
		Type:      MessageTypeFlightRemoved,
		FlightID:  flightID,
		Timestamp: time.Now().UnixMilli(),
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades an HTTP request to a WebSocket connection on the hub.
func ServeWS(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("WebSocket: Upgrade failed: %v", err)
			return
		}

		client := &Client{
			hub:  hub,
			conn: conn,
			send: make(chan []byte, 64),
		}
		hub.register <- client

		go client.writePump()
		go client.readPump()
	}
}

// readPump drains incoming frames so pong handlers run; the feed is one-way.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
