package main

import (
	"Blackjack/config"
	_ "Blackjack/config/swagger"
	"Blackjack/middleware"
	"Blackjack/routes"
	"Blackjack/services/broadcast"
	"Blackjack/services/game"
	"Blackjack/services/redis"
	"Blackjack/services/socket_io"
	"Blackjack/services/ws"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Blackjack API
// @version 1.0
// @description Gin-Gonic server for multiplayer blackjack rooms
// @BasePath /
func main() {
	cfg := config.Load()
	log.Println("Setting up server...")

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fanout := broadcast.NewFanout()
	opts := game.Options{
		DealerTick:  cfg.DealerTick,
		MaxPlayers:  cfg.MaxPlayers,
		Broadcaster: fanout,
	}

	redisClient, err := config.Connect_redis(cfg)
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	if redisClient != nil {
		defer redis.CloseRedis(redisClient)
		publisher := redis.NewSnapshotPublisher(redisClient, 0)
		fanout.Add(publisher)
		opts.OnRemove = publisher.Forget
		go publisher.Run(ctx)
	}

	rooms := game.NewRegistry(opts)
	defer rooms.Close()
	engine := game.NewEngine(rooms)

	hub := ws.NewHub()
	fanout.Add(hub)

	sio := socket_io.NewMySocketServer()
	fanout.Add(sio.Types())

	r := gin.Default()

	middleware.SetUpMiddleware(r, cfg.SessionKey, cfg.CorsOrigin)

	routes.SetupRoutes(r, engine, hub)

	sio.Start(r, engine, socket_io.Options{CorsOrigin: cfg.CorsOrigin, Debug: cfg.SocketDebug})
	defer sio.Close()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		log.Printf("Server started on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
