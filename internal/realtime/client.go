// MentorHive | 2026
// client.go

package realtime

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
	sendBufferSize = 64
)

// Client messages are room membership changes only; the server never
// echoes a payload back in response.
type clientMessage struct {
	Type    string `json:"type"`
	DoubtID string `json:"doubtId,omitempty"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// rooms is owned by the hub and only touched under its lock.
	rooms map[string]struct{}
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:   hub,
		conn:  conn,
		send:  make(chan []byte, sendBufferSize),
		rooms: make(map[string]struct{}),
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		close(c.send)
		_ = c.conn.Close() //nolint:errcheck // connection teardown
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		c.handle(msg)
	}
}

func (c *Client) handle(msg clientMessage) {
	switch msg.Type {
	case "join-doubt":
		if msg.DoubtID != "" {
			c.hub.join(c, "doubt-"+msg.DoubtID)
		}
	case "leave-doubt":
		if msg.DoubtID != "" {
			c.hub.leave(c, "doubt-"+msg.DoubtID)
		}
	case "join-junior-space":
		c.hub.join(c, "junior-space")
	case "leave-junior-space":
		c.hub.leave(c, "junior-space")
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() //nolint:errcheck // connection teardown
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if !ok {
				_ = c.conn.WriteMessage( //nolint:errcheck
					websocket.CloseMessage, nil,
				)
				return
			}

			if err := c.conn.WriteMessage(
				websocket.TextMessage, msg,
			); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if err := c.conn.WriteMessage(
				websocket.PingMessage, nil,
			); err != nil {
				return
			}
		}
	}
}
