package ws

import (
	game_constants "Blackjack/constants/game"
	"Blackjack/services/game"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ClientMessage is what websocket clients send.
type ClientMessage struct {
	Type string `json:"type"` // join | hit | stand | restart | leave
	Name string `json:"name,omitempty"`
}

// Handler upgrades GET /ws/:code. Each connection is a distinct player that
// watches the room from the moment it connects and may join it.
func Handler(engine *game.Engine, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, ok := game.NormalizeRoomCode(c.Param("code"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room code"})
			return
		}

		wsConn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS-ERROR] Upgrade failed: %v", err)
			return
		}

		conn := newConn(wsConn, uuid.NewString(), code)
		hub.Subscribe(code, conn)
		go conn.writePump()

		conn.queueMessage(Message{Type: "identity", Payload: gin.H{"id": conn.playerID, "roomCode": code}})
		if view, ok := engine.View(code); ok {
			conn.queueMessage(Message{Type: game_constants.EventGameState, Payload: view})
		}
		log.Printf("[WS] Player %s watching room %s", conn.playerID, code)

		readPump(engine, hub, conn)
	}
}

func readPump(engine *game.Engine, hub *Hub, c *Conn) {
	defer func() {
		hub.Unsubscribe(c.code, c)
		engine.Leave(c.code, c.playerID)
		close(c.send)
		log.Printf("[WS] Player %s disconnected from room %s", c.playerID, c.code)
	}()

	c.ws.SetReadLimit(maxMessage)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := c.ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS-ERROR] Player %s: %v", c.playerID, err)
			}
			return
		}
		dispatch(engine, c, msg)
	}
}

func dispatch(engine *game.Engine, c *Conn, msg ClientMessage) {
	switch t := strings.ToLower(strings.TrimSpace(msg.Type)); t {
	case "join":
		if view, changed := engine.Join(c.code, c.playerID, msg.Name); !changed && !view.Seated(c.playerID) {
			c.queueMessage(Message{Type: "error", Payload: "Could not join room"})
		}
	case "hit", "stand":
		action, _ := game.ParseAction(t)
		engine.Act(c.code, c.playerID, action)
	case "restart":
		engine.Restart(c.code)
	case "leave":
		engine.Leave(c.code, c.playerID)
	default:
		c.queueMessage(Message{Type: "error", Payload: "Unknown message type"})
	}
}
