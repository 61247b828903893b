package redis

import (
	redis_models "Blackjack/models/redis"
	"Blackjack/services/game"
	"context"
	"log"
	"sync/atomic"
	"time"
)

type snapshotWriter interface {
	SaveAndPublish(snapshot *redis_models.RoomSnapshot) error
	DeleteRoomView(roomCode string) error
}

// job is either a snapshot to mirror or, when snapshot is nil, a room
// whose cached view must be removed.
type job struct {
	snapshot *redis_models.RoomSnapshot
	forget   string
}

// SnapshotPublisher mirrors room snapshots into Redis from a background
// worker. Broadcast never waits on the network; when the queue is full the
// snapshot is dropped and the next one supersedes it.
type SnapshotPublisher struct {
	store snapshotWriter
	queue chan job
	seq   atomic.Uint64
	drops atomic.Uint64
	now   func() time.Time
}

func NewSnapshotPublisher(store snapshotWriter, buffer int) *SnapshotPublisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &SnapshotPublisher{
		store: store,
		queue: make(chan job, buffer),
		now:   time.Now,
	}
}

func (p *SnapshotPublisher) Broadcast(code string, view game.RoomView) {
	snapshot := &redis_models.RoomSnapshot{
		Seq:         p.seq.Add(1),
		PublishedAt: p.now(),
		View:        view,
	}
	select {
	case p.queue <- job{snapshot: snapshot}:
	default:
		if p.drops.Add(1)%100 == 1 {
			log.Printf("[REDIS-WARN] Snapshot queue full, dropping room %s seq %d", code, snapshot.Seq)
		}
	}
}

// Forget queues the removal of a room's cached view behind any snapshot
// already queued for it.
func (p *SnapshotPublisher) Forget(code string) {
	select {
	case p.queue <- job{forget: code}:
	default:
		log.Printf("[REDIS-WARN] Snapshot queue full, room %s view left to expire", code)
	}
}

// Dropped reports how many snapshots were discarded because the queue was full.
func (p *SnapshotPublisher) Dropped() uint64 {
	return p.drops.Load()
}

// Run drains the queue until ctx is cancelled.
func (p *SnapshotPublisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-p.queue:
			if j.snapshot == nil {
				if err := p.store.DeleteRoomView(j.forget); err != nil {
					log.Printf("[REDIS-ERROR] Room %s: %v", j.forget, err)
				}
				continue
			}
			if err := p.store.SaveAndPublish(j.snapshot); err != nil {
				log.Printf("[REDIS-ERROR] Room %s seq %d: %v", j.snapshot.View.Code, j.snapshot.Seq, err)
			}
		}
	}
}
