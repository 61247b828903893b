package main

import (
	"Blackjack/services/game"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const simRoom = "SIM"

var errRoundStuck = errors.New("round did not finish")

// Round is everything observed while one round was played.
type Round struct {
	Number    int
	Snapshots []game.RoomView
	Outcomes  []game.PlayerOutcome
}

// Simulator drives one in-process room with scripted players that hit
// below a fixed score.
type Simulator struct {
	Players  int
	HitBelow int
	Timeout  time.Duration

	engine *game.Engine
	rooms  *game.Registry
	seated bool

	mu       sync.Mutex
	recorded []game.RoomView
}

func NewSimulator(players, hitBelow int, seed int64) *Simulator {
	s := &Simulator{
		Players:  players,
		HitBelow: hitBelow,
		Timeout:  5 * time.Second,
	}
	s.rooms = game.NewRegistry(game.Options{
		Rand:        rand.New(rand.NewSource(seed)),
		Broadcaster: game.BroadcasterFunc(s.record),
	})
	s.engine = game.NewEngine(s.rooms)
	return s
}

func (s *Simulator) record(code string, view game.RoomView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded = append(s.recorded, view)
}

func (s *Simulator) takeSnapshots() []game.RoomView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.recorded
	s.recorded = nil
	return out
}

func (s *Simulator) Close() {
	s.rooms.Close()
}

// seat joins every bot. Bots after the first join mid-round without cards,
// so the seating round is stood through and discarded.
func (s *Simulator) seat() error {
	for i := 1; i <= s.Players; i++ {
		s.engine.Join(simRoom, fmt.Sprintf("bot-%d", i), fmt.Sprintf("Bot %d", i))
	}
	s.playTurns(func(game.PlayerView) game.Action { return game.ActionStand })
	if err := s.waitFinished(); err != nil {
		return fmt.Errorf("seating: %w", err)
	}
	s.takeSnapshots()
	s.seated = true
	return nil
}

// Play deals and plays one full round.
func (s *Simulator) Play(number int) (Round, error) {
	if !s.seated {
		if err := s.seat(); err != nil {
			return Round{}, err
		}
	}
	if _, ok := s.engine.Restart(simRoom); !ok {
		return Round{}, fmt.Errorf("round %d: room could not be restarted", number)
	}

	s.playTurns(s.decide)
	if err := s.waitFinished(); err != nil {
		return Round{}, fmt.Errorf("round %d: %w", number, err)
	}

	view, _ := s.engine.View(simRoom)
	return Round{
		Number:    number,
		Snapshots: s.takeSnapshots(),
		Outcomes:  game.ResolveOutcomes(view),
	}, nil
}

func (s *Simulator) decide(p game.PlayerView) game.Action {
	if p.Score < s.HitBelow {
		return game.ActionHit
	}
	return game.ActionStand
}

// playTurns acts for every playing bot until the players' turn is over.
// A hit the deck cannot serve becomes a stand.
func (s *Simulator) playTurns(decide func(game.PlayerView) game.Action) {
	for {
		view, ok := s.engine.View(simRoom)
		if !ok || view.Phase != game.PhasePlayersTurn {
			return
		}
		for _, p := range view.Players {
			if p.Status != game.StatusPlaying {
				continue
			}
			if _, changed := s.engine.Act(simRoom, p.ID, decide(p)); !changed {
				s.engine.Act(simRoom, p.ID, game.ActionStand)
			}
		}
	}
}

func (s *Simulator) waitFinished() error {
	deadline := time.Now().Add(s.Timeout)
	for time.Now().Before(deadline) {
		if view, ok := s.engine.View(simRoom); ok && view.Phase == game.PhaseFinished {
			return nil
		}
		time.Sleep(time.Millisecond)
	}
	return errRoundStuck
}
