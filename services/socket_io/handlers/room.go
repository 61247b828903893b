package handlers

import (
	game_constants "Blackjack/constants/game"
	"Blackjack/services/game"
	socketio_types "Blackjack/services/socket_io/types"
	socketio_utils "Blackjack/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Client is the part of *socket.Socket the handlers use.
type Client interface {
	Id() socket.SocketId
	Join(...socket.Room)
	Leave(socket.Room)
	Emit(string, ...any) error
}

func emitError(client Client, msg string) {
	client.Emit(game_constants.EventError, gin.H{"error": msg})
}

// roomCodeFrom reads and normalizes the roomCode field of an event payload,
// emitting an error to the client when it is unusable.
func roomCodeFrom(client Client, tag string, args []interface{}) (map[string]interface{}, string, bool) {
	payload, err := socketio_utils.ParsePayload(args)
	if err != nil {
		log.Printf("[%s-ERROR] Socket %s: %v", tag, client.Id(), err)
		emitError(client, "Invalid payload")
		return nil, "", false
	}
	raw, _ := socketio_utils.StringField(payload, "roomCode")
	code, ok := game.NormalizeRoomCode(raw)
	if !ok {
		log.Printf("[%s-ERROR] Socket %s sent no valid room code", tag, client.Id())
		emitError(client, "Missing room code")
		return nil, "", false
	}
	return payload, code, true
}

// HandleJoinRoom seats the socket in a room. The socket joins the socket.io
// room first so it receives the snapshot broadcast by the join itself.
func HandleJoinRoom(engine *game.Engine, client Client, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())
		payload, code, ok := roomCodeFrom(client, "JOIN", args)
		if !ok {
			return
		}
		username, ok := socketio_utils.StringField(payload, "username")
		if !ok {
			emitError(client, "Missing username")
			return
		}

		alreadyIn := sio.HasMembership(playerID, code)
		client.Join(socket.Room(code))

		view, changed := engine.Join(code, playerID, username)
		switch {
		case changed:
			sio.AddMembership(playerID, code)
			log.Printf("[JOIN] Socket %s joined room %s as %s", playerID, code, username)
		case alreadyIn:
			client.Emit(game_constants.EventGameState, view)
		default:
			client.Leave(socket.Room(code))
			log.Printf("[JOIN-REJECTED] Socket %s could not join room %s", playerID, code)
			emitError(client, "Could not join room")
		}
	}
}

// HandlePlayerAction applies hit or stand. Requests that are not legal in
// the current state are ignored.
func HandlePlayerAction(engine *game.Engine, client Client) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, code, ok := roomCodeFrom(client, "ACTION", args)
		if !ok {
			return
		}
		raw, _ := socketio_utils.StringField(payload, "action")
		action, ok := game.ParseAction(raw)
		if !ok {
			log.Printf("[ACTION-ERROR] Socket %s sent unknown action %q", client.Id(), raw)
			return
		}
		if _, changed := engine.Act(code, string(client.Id()), action); !changed {
			log.Printf("[ACTION] Ignored %s from socket %s in room %s", action, client.Id(), code)
		}
	}
}

func HandleRestartGame(engine *game.Engine, client Client) func(args ...interface{}) {
	return func(args ...interface{}) {
		_, code, ok := roomCodeFrom(client, "RESTART", args)
		if !ok {
			return
		}
		if _, changed := engine.Restart(code); !changed {
			log.Printf("[RESTART] Ignored restart of room %s from socket %s", code, client.Id())
		}
	}
}

func HandleLeaveRoom(engine *game.Engine, client Client, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		_, code, ok := roomCodeFrom(client, "LEAVE", args)
		if !ok {
			return
		}
		playerID := string(client.Id())
		engine.Leave(code, playerID)
		sio.RemoveMembership(playerID, code)
		client.Leave(socket.Room(code))
	}
}

// HandleDisconnect removes the socket's player from every room it joined.
func HandleDisconnect(engine *game.Engine, client Client, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())
		codes := sio.TakeMemberships(playerID)
		log.Printf("[DISCONNECT] Socket %s left %d rooms (%v)", playerID, len(codes), args)
		for _, code := range codes {
			engine.Leave(code, playerID)
		}
	}
}
