package config

import (
	game_constants "Blackjack/constants/game"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port        string
	Prod        bool
	SessionKey  string
	CorsOrigin  string
	RedisURL    string // empty disables the snapshot cache
	DealerTick  time.Duration
	SnapshotTTL time.Duration
	MaxPlayers  int
	SocketDebug bool
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		Prod:        getBool("PROD", false),
		SessionKey:  getEnv("SESSION_KEY", "blackjack-dev-session-key"),
		CorsOrigin:  getEnv("CORS_ORIGIN", "*"),
		RedisURL:    os.Getenv("REDIS_URL"),
		DealerTick:  time.Duration(getInt("DEALER_TICK_MS", int(game_constants.DefaultDealerTick/time.Millisecond))) * time.Millisecond,
		SnapshotTTL: time.Duration(getInt("SNAPSHOT_TTL_MINUTES", 60)) * time.Minute,
		MaxPlayers:  getInt("MAX_PLAYERS", 0),
		SocketDebug: getBool("SOCKET_DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}
