package broadcast

import (
	"Blackjack/services/game"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	mu    sync.Mutex
	codes []string
	views []game.RoomView
}

func (c *capture) Broadcast(code string, view game.RoomView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.codes = append(c.codes, code)
	c.views = append(c.views, view)
}

func (c *capture) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.views)
}

func TestFanoutForwardsToEverySink(t *testing.T) {
	a, b := &capture{}, &capture{}
	f := NewFanout(a, nil)
	f.Add(b)
	assert.Equal(t, 2, f.Len())

	f.Broadcast("AB12", game.RoomView{Code: "AB12", Phase: game.PhaseWaiting})

	assert.Equal(t, []string{"AB12"}, a.codes)
	assert.Equal(t, []string{"AB12"}, b.codes)
	assert.Equal(t, game.PhaseWaiting, b.views[0].Phase)
}

func TestFanoutAsRegistryBroadcaster(t *testing.T) {
	sink := &capture{}
	fan := NewFanout()
	reg := game.NewRegistry(game.Options{Broadcaster: fan})
	defer reg.Close()
	engine := game.NewEngine(reg)

	// A sink added after the registry still receives snapshots.
	fan.Add(sink)
	_, changed := engine.Join("T1", "p1", "Alice")
	require.True(t, changed)

	assert.Eventually(t, func() bool { return sink.count() >= 1 }, time.Second, 10*time.Millisecond)
	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, "T1", sink.codes[0])
	require.Len(t, sink.views[0].Players, 1)
	assert.Equal(t, "Alice", sink.views[0].Players[0].Username)
}
