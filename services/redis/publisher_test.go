package redis

import (
	redis_models "Blackjack/models/redis"
	"Blackjack/services/game"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu        sync.Mutex
	snapshots []*redis_models.RoomSnapshot
	deleted   []string
	err       error
}

func (w *fakeWriter) DeleteRoomView(code string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.deleted = append(w.deleted, code)
	return nil
}

func (w *fakeWriter) SaveAndPublish(s *redis_models.RoomSnapshot) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.snapshots = append(w.snapshots, s)
	return w.err
}

func (w *fakeWriter) len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.snapshots)
}

func TestSnapshotPublisherWritesInOrder(t *testing.T) {
	w := &fakeWriter{}
	p := NewSnapshotPublisher(w, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	p.Broadcast("AB12", game.RoomView{Code: "AB12", Phase: game.PhasePlayersTurn})
	p.Broadcast("AB12", game.RoomView{Code: "AB12", Phase: game.PhaseDealerTurn})

	require.Eventually(t, func() bool { return w.len() == 2 }, time.Second, 5*time.Millisecond)
	w.mu.Lock()
	defer w.mu.Unlock()
	assert.Equal(t, uint64(1), w.snapshots[0].Seq)
	assert.Equal(t, uint64(2), w.snapshots[1].Seq)
	assert.Equal(t, game.PhaseDealerTurn, w.snapshots[1].View.Phase)
}

func TestSnapshotPublisherDropsWhenFull(t *testing.T) {
	p := NewSnapshotPublisher(&fakeWriter{}, 1)

	// Nothing drains the queue, so only the first snapshot fits.
	p.Broadcast("AB12", game.RoomView{Code: "AB12"})
	p.Broadcast("AB12", game.RoomView{Code: "AB12"})
	p.Broadcast("AB12", game.RoomView{Code: "AB12"})

	assert.Equal(t, uint64(2), p.Dropped())
}

func TestSnapshotPublisherSurvivesWriteErrors(t *testing.T) {
	w := &fakeWriter{err: errors.New("connection refused")}
	p := NewSnapshotPublisher(w, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	p.Broadcast("X", game.RoomView{Code: "X"})
	p.Broadcast("X", game.RoomView{Code: "X"})

	assert.Eventually(t, func() bool { return w.len() == 2 }, time.Second, 5*time.Millisecond)
}

func TestSnapshotPublisherForgetRunsAfterQueuedSnapshots(t *testing.T) {
	w := &fakeWriter{}
	p := NewSnapshotPublisher(w, 4)

	p.Broadcast("AB12", game.RoomView{Code: "AB12"})
	p.Forget("AB12")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	require.Eventually(t, func() bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		return len(w.deleted) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, w.len())
	assert.Equal(t, []string{"AB12"}, w.deleted)
}
