package redis

import (
	redis_models "Blackjack/models/redis"
	redis_utils "Blackjack/services/redis/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoSnapshot is returned when no view is cached for a room.
var ErrNoSnapshot = errors.New("no snapshot cached")

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

// NewRedisClient creates a new Redis client instance. Addr is either a
// plain host:port or a redis:// URL.
func NewRedisClient(Addr string, DB int, ttl time.Duration) (*RedisClient, error) {
	var client *redis.Client
	if opt, err := redis.ParseURL(Addr); err == nil {
		log.Println("Connecting to remote Redis...")
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
		ttl:    ttl,
	}, nil
}

// SaveRoomView stores the latest snapshot of a room
// Key format: "room:{code}:view"
func (rc *RedisClient) SaveRoomView(snapshot *redis_models.RoomSnapshot) error {
	key := redis_utils.FormatRoomViewKey(snapshot.View.Code)
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error marshaling room snapshot: %w", err)
	}
	return rc.client.Set(rc.ctx, key, data, rc.ttl).Err()
}

// GetRoomView retrieves the latest cached snapshot of a room
// Key format: "room:{code}:view"
func (rc *RedisClient) GetRoomView(roomCode string) (*redis_models.RoomSnapshot, error) {
	key := redis_utils.FormatRoomViewKey(roomCode)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("error getting room snapshot: %w", err)
	}

	var snapshot redis_models.RoomSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("error unmarshaling room snapshot: %w", err)
	}
	return &snapshot, nil
}

// DeleteRoomView removes the cached snapshot of a room
func (rc *RedisClient) DeleteRoomView(roomCode string) error {
	key := redis_utils.FormatRoomViewKey(roomCode)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting room snapshot: %w", err)
	}
	return nil
}

// PublishRoomView pushes a snapshot to the room's channel so other gateway
// processes can relay it.
// Channel format: "room:{code}:events"
func (rc *RedisClient) PublishRoomView(snapshot *redis_models.RoomSnapshot) error {
	channel := redis_utils.FormatRoomEventsChannel(snapshot.View.Code)
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error marshaling room snapshot: %w", err)
	}
	if err := rc.client.Publish(rc.ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("error publishing room snapshot: %w", err)
	}
	return nil
}

// SaveAndPublish caches and publishes a snapshot in a single pipeline.
func (rc *RedisClient) SaveAndPublish(snapshot *redis_models.RoomSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error marshaling room snapshot: %w", err)
	}

	pipe := rc.client.Pipeline()
	pipe.Set(rc.ctx, redis_utils.FormatRoomViewKey(snapshot.View.Code), data, rc.ttl)
	pipe.Publish(rc.ctx, redis_utils.FormatRoomEventsChannel(snapshot.View.Code), data)
	if _, err := pipe.Exec(rc.ctx); err != nil {
		return fmt.Errorf("error saving room snapshot: %w", err)
	}
	return nil
}
