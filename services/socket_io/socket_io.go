package socket_io

import (
	game_constants "Blackjack/constants/game"
	"Blackjack/services/game"
	"Blackjack/services/socket_io/handlers"
	socketio_types "Blackjack/services/socket_io/types"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	eio_log "github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

type Options struct {
	CorsOrigin string
	Debug      bool
}

func NewMySocketServer() *MySocketServer {
	return (*MySocketServer)(socketio_types.NewSocketServer())
}

func (sio *MySocketServer) Types() *socketio_types.SocketServer {
	return (*socketio_types.SocketServer)(sio)
}

// Start creates the socket.io server, registers the room events and mounts
// the transport under /socket.io/ on the router.
func (sio *MySocketServer) Start(router *gin.Engine, engine *game.Engine, opts Options) {
	eio_log.DEBUG = opts.Debug
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	origin := opts.CorsOrigin
	if origin == "" {
		origin = "*"
	}
	c.SetCors(&types.Cors{
		Origin:      origin,
		Credentials: true,
	})

	sio.Sio_server = socket.NewServer(nil, nil)
	server := sio.Types()
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		log.Printf("[CONNECT] Socket %s connected", client.Id())

		client.On(game_constants.EventJoinRoom, handlers.HandleJoinRoom(engine, client, server))

		client.On(game_constants.EventPlayerAction, handlers.HandlePlayerAction(engine, client))

		client.On(game_constants.EventRestartGame, handlers.HandleRestartGame(engine, client))

		client.On(game_constants.EventLeaveRoom, handlers.HandleLeaveRoom(engine, client, server))

		// NOTE: removes the player from every room the socket joined
		client.On("disconnect", handlers.HandleDisconnect(engine, client, server))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	log.Println("Socket server started")
}

func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
