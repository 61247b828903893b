package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
	maxMessage = 4096
)

// Conn is one websocket client bound to a room. Only writePump writes to
// the socket.
type Conn struct {
	ws       *websocket.Conn
	send     chan []byte
	playerID string
	code     string
}

func newConn(ws *websocket.Conn, playerID, code string) *Conn {
	return &Conn{
		ws:       ws,
		send:     make(chan []byte, sendBuffer),
		playerID: playerID,
		code:     code,
	}
}

func (c *Conn) queue(data []byte) {
	select {
	case c.send <- data:
	default:
		log.Printf("[WS-WARN] Player %s is too slow, dropping snapshot of room %s", c.playerID, c.code)
	}
}

func (c *Conn) queueMessage(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WS-ERROR] Encoding %s message: %v", msg.Type, err)
		return
	}
	c.queue(data)
}

func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
