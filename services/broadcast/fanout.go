package broadcast

import (
	"Blackjack/services/game"
	"sync"
)

// Fanout forwards every room snapshot to a set of sinks. It is installed as
// the registry's broadcaster before the gateways exist, so sinks are
// registered later with Add.
type Fanout struct {
	mu    sync.RWMutex
	sinks []game.Broadcaster
}

func NewFanout(sinks ...game.Broadcaster) *Fanout {
	f := &Fanout{}
	for _, s := range sinks {
		f.Add(s)
	}
	return f
}

func (f *Fanout) Add(sink game.Broadcaster) {
	if sink == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinks = append(f.sinks, sink)
}

func (f *Fanout) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.sinks)
}

// Broadcast runs under the room lock; sinks must return promptly.
func (f *Fanout) Broadcast(code string, view game.RoomView) {
	f.mu.RLock()
	sinks := f.sinks
	f.mu.RUnlock()
	for _, s := range sinks {
		s.Broadcast(code, view)
	}
}
