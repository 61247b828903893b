package game

import (
	game_constants "Blackjack/constants/game"
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

type Phase string

const (
	PhaseWaiting     Phase = "waiting"
	PhasePlayersTurn Phase = "players_turn"
	PhaseDealerTurn  Phase = "dealer_turn"
	PhaseFinished    Phase = "finished"
)

type Status string

const (
	StatusPlaying   Status = "playing"
	StatusStand     Status = "stand"
	StatusBust      Status = "bust"
	StatusBlackjack Status = "blackjack"
)

type Action string

const (
	ActionHit   Action = "hit"
	ActionStand Action = "stand"
)

var ErrRoomClosed = errors.New("room closed")

type Player struct {
	ID       string
	Username string
	Hand     []Card
	Score    int
	Status   Status
}

type Dealer struct {
	Hand  []Card
	Score int
}

// Room is one blackjack table. Every exported method serializes on the
// room's own mutex; rooms never share mutable state.
type Room struct {
	code string
	opts Options

	mu      sync.Mutex
	players []*Player
	dealer  Dealer
	deck    *Deck
	phase   Phase
	closed  bool

	// dealerCancel is non-nil iff a dealer task is live; only the task
	// started with the current dealerGen may mutate the room.
	dealerCancel context.CancelFunc
	dealerGen    uint64
}

func newRoom(code string, opts Options) *Room {
	return &Room{
		code:  code,
		opts:  opts,
		deck:  DeckFromCards(),
		phase: PhaseWaiting,
	}
}

func (r *Room) Code() string {
	return r.code
}

func (r *Room) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// Join seats a new player. The first player, or any player joining a
// finished or idle room, triggers a fresh deal. Late joiners wait for the
// next deal without cards.
func (r *Room) Join(playerID, username string) (RoomView, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return RoomView{}, false, ErrRoomClosed
	}
	if r.findLocked(playerID) != nil {
		return r.viewLocked(), false, nil
	}
	if r.opts.MaxPlayers > 0 && len(r.players) >= r.opts.MaxPlayers {
		log.Printf("[JOIN-REJECTED] Room %s is full (%d players)", r.code, len(r.players))
		return r.viewLocked(), false, nil
	}

	r.players = append(r.players, &Player{
		ID:       playerID,
		Username: username,
		Hand:     []Card{},
		Status:   StatusPlaying,
	})
	log.Printf("[JOIN] Player %s (%s) joined room %s", username, playerID, r.code)

	if len(r.players) == 1 || r.phase == PhaseFinished || r.phase == PhaseWaiting {
		r.resetLocked()
	} else {
		r.broadcastLocked()
	}
	return r.viewLocked(), true, nil
}

// Act applies hit or stand for a player who is still playing.
func (r *Room) Act(playerID string, action Action) (RoomView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhasePlayersTurn {
		return r.viewLocked(), false
	}
	p := r.findLocked(playerID)
	if p == nil || p.Status != StatusPlaying {
		return r.viewLocked(), false
	}

	switch action {
	case ActionHit:
		c, err := r.deck.Draw()
		if err != nil {
			log.Printf("[ACTION-ERROR] Room %s: hit for %s failed: %v", r.code, playerID, err)
			return r.viewLocked(), false
		}
		p.Hand = append(p.Hand, c)
		p.Score = Score(p.Hand)
		if IsBust(p.Score) {
			p.Status = StatusBust
		}
	case ActionStand:
		p.Status = StatusStand
	default:
		return r.viewLocked(), false
	}

	if r.allDoneLocked() {
		r.startDealerTurnLocked()
	} else {
		r.broadcastLocked()
	}
	return r.viewLocked(), true
}

// Restart deals a new round, only once the previous one has finished.
func (r *Room) Restart() (RoomView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.phase != PhaseFinished {
		return r.viewLocked(), false
	}
	r.resetLocked()
	return r.viewLocked(), true
}

// Leave removes a player. Leaving mid-round re-evaluates turn completion
// over the remaining roster. The returned empty flag reports that nobody is
// left at the table.
func (r *Room) Leave(playerID string) (view RoomView, changed bool, empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r.viewLocked(), false, len(r.players) == 0
	}

	log.Printf("[LEAVE] Player %s left room %s", r.players[idx].Username, r.code)
	r.players = append(r.players[:idx], r.players[idx+1:]...)

	if len(r.players) == 0 {
		r.stopDealerLocked()
		r.phase = PhaseWaiting
		r.dealer = Dealer{}
		return r.viewLocked(), true, true
	}

	if r.phase == PhasePlayersTurn && r.allDoneLocked() {
		r.startDealerTurnLocked()
	} else {
		r.broadcastLocked()
	}
	return r.viewLocked(), true, false
}

// closeIfEmpty marks an empty room as closed and stops its dealer.
func (r *Room) closeIfEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.players) > 0 {
		return false
	}
	r.closed = true
	r.stopDealerLocked()
	return true
}

func (r *Room) shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.stopDealerLocked()
}

func (r *Room) findLocked(playerID string) *Player {
	for _, p := range r.players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

func (r *Room) allDoneLocked() bool {
	for _, p := range r.players {
		if p.Status == StatusPlaying {
			return false
		}
	}
	return true
}

func (r *Room) broadcastLocked() {
	if r.opts.Broadcaster == nil {
		return
	}
	r.opts.Broadcaster.Broadcast(r.code, r.viewLocked())
}

// resetLocked deals a new round to the current roster. Hands are built
// aside and committed only once every draw succeeded.
func (r *Room) resetLocked() {
	r.stopDealerLocked()
	log.Printf("[RESET] Dealing a new round in room %s (%d players)", r.code, len(r.players))

	deck := r.opts.deckFactory()
	hands := make([][]Card, len(r.players))
	for i := range r.players {
		hand, err := drawN(deck, game_constants.CardsPerInitialDeal)
		if err != nil {
			r.abortRoundLocked(err)
			return
		}
		hands[i] = hand
	}
	dealerHand, err := drawN(deck, game_constants.CardsPerInitialDeal)
	if err != nil {
		r.abortRoundLocked(err)
		return
	}

	r.deck = deck
	r.dealer = Dealer{Hand: dealerHand, Score: Score(dealerHand)}

	allBlackjack := len(r.players) > 0
	for i, p := range r.players {
		p.Hand = hands[i]
		p.Score = Score(p.Hand)
		p.Status = StatusPlaying
		if IsNatural(p.Hand) {
			p.Status = StatusBlackjack
		} else {
			allBlackjack = false
		}
	}

	if len(r.players) == 0 {
		r.phase = PhaseWaiting
		return
	}
	if allBlackjack {
		r.startDealerTurnLocked()
		return
	}
	r.phase = PhasePlayersTurn
	r.broadcastLocked()
}

func (r *Room) abortRoundLocked(err error) {
	log.Printf("[RESET-ERROR] Room %s: deal failed: %v", r.code, err)
	r.phase = PhaseFinished
	r.broadcastLocked()
}

func drawN(deck *Deck, n int) ([]Card, error) {
	hand := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := deck.Draw()
		if err != nil {
			return nil, err
		}
		hand = append(hand, c)
	}
	return hand, nil
}

// startDealerTurnLocked reveals the hole card and launches the dealer task.
// Any previous task is cancelled first so at most one is ever live.
func (r *Room) startDealerTurnLocked() {
	r.stopDealerLocked()
	r.phase = PhaseDealerTurn
	r.broadcastLocked()

	r.dealerGen++
	ctx, cancel := context.WithCancel(context.Background())
	r.dealerCancel = cancel
	go r.runDealer(ctx, r.dealerGen, r.opts.DealerTick)
}

// stopDealerLocked cancels the live dealer task, if any, and retires its
// generation so a tick already waiting on the lock is dropped.
func (r *Room) stopDealerLocked() {
	if r.dealerCancel != nil {
		r.dealerCancel()
		r.dealerCancel = nil
	}
	r.dealerGen++
}

func (r *Room) runDealer(ctx context.Context, gen uint64, every time.Duration) {
	var tick <-chan time.Time
	if every > 0 {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return
		}
		if r.dealerStep(ctx, gen) {
			return
		}
	}
}

// dealerStep performs one dealer tick and reports whether the task is over.
// A tick from a cancelled or superseded task is dropped without touching
// the room.
func (r *Room) dealerStep(ctx context.Context, gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ctx.Err() != nil || gen != r.dealerGen || r.phase != PhaseDealerTurn {
		return true
	}

	if r.dealer.Score < game_constants.DealerStandsOn {
		c, err := r.deck.Draw()
		if err == nil {
			r.dealer.Hand = append(r.dealer.Hand, c)
			r.dealer.Score = Score(r.dealer.Hand)
			r.broadcastLocked()
			return false
		}
		log.Printf("[DEALER-ERROR] Room %s: %v, ending round", r.code, err)
	}

	r.stopDealerLocked()
	r.phase = PhaseFinished
	r.broadcastLocked()
	log.Printf("[DEALER] Round finished in room %s, dealer at %d", r.code, r.dealer.Score)
	return true
}
