package config

import (
	"Blackjack/services/redis"
	"log"
)

// Connect to Redis. Returns nil without error when no REDIS_URL is set.
func Connect_redis(cfg Config) (*redis.RedisClient, error) {
	if cfg.RedisURL == "" {
		log.Println("REDIS_URL not set, snapshot cache disabled")
		return nil, nil
	}
	redisClient, err := redis.InitRedis(cfg.RedisURL, 0, cfg.SnapshotTTL)
	if err != nil {
		return nil, err
	}
	log.Println("Redis connection established")
	return redisClient, nil
}
