package redis

import (
	"Blackjack/services/game"
	"time"
)

// RoomSnapshot is the envelope cached and published for each room view.
type RoomSnapshot struct {
	Seq         uint64        `json:"seq"`          // Monotonic per process
	PublishedAt time.Time     `json:"published_at"` // Server clock
	View        game.RoomView `json:"view"`
}
