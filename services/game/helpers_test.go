package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func card(r Rank, s Suit) Card {
	return Card{Suit: s, Rank: r}
}

// stacked returns a deck factory dealing cards in the given order.
func stacked(cards ...Card) func() *Deck {
	return func() *Deck {
		rev := make([]Card, len(cards))
		for i, c := range cards {
			rev[len(cards)-1-i] = c
		}
		return DeckFromCards(rev...)
	}
}

type recorder struct {
	mu    sync.Mutex
	views []RoomView
}

func (r *recorder) Broadcast(code string, v RoomView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, v)
}

func (r *recorder) all() []RoomView {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RoomView, len(r.views))
	copy(out, r.views)
	return out
}

func (r *recorder) phases() []Phase {
	var out []Phase
	for _, v := range r.all() {
		out = append(out, v.Phase)
	}
	return out
}

func newTestEngine(deck func() *Deck) (*Engine, *recorder) {
	rec := &recorder{}
	reg := NewRegistry(Options{NewDeck: deck, Broadcaster: rec})
	return NewEngine(reg), rec
}

func waitPhase(t *testing.T, e *Engine, code string, want Phase) RoomView {
	t.Helper()
	var view RoomView
	require.Eventually(t, func() bool {
		v, ok := e.View(code)
		view = v
		return ok && v.Phase == want
	}, 2*time.Second, 5*time.Millisecond)
	return view
}
