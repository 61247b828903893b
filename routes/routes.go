package routes

import (
	"Blackjack/controllers"
	"Blackjack/middleware"
	"Blackjack/services/game"
	"Blackjack/services/ws"
	utils "Blackjack/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, engine *game.Engine, hub *ws.Hub) {
	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/rooms", controllers.ListRooms(engine))

	rooms := api.Group("/rooms/:code")
	{
		rooms.GET("", controllers.GetRoom(engine))

		rooms.GET("/outcomes", controllers.GetOutcomes(engine))

		rooms.POST("/restart", controllers.RestartGame(engine))

		// Routes acting as the session's player
		player := rooms.Group("")
		player.Use(middleware.PlayerRequired)
		{
			player.POST("/join", controllers.JoinRoom(engine))

			player.POST("/action", controllers.PlayerAction(engine))

			player.POST("/leave", controllers.LeaveRoom(engine))
		}
	}

	// Raw websocket gateway, one player per connection
	router.GET("/ws/:code", ws.Handler(engine, hub))
}
