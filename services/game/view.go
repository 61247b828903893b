package game

// RoomView is the snapshot pushed to observers. It never aliases the live
// room's slices.
type RoomView struct {
	Code    string       `json:"roomCode"`
	Phase   Phase        `json:"gameState"`
	Dealer  DealerView   `json:"dealer"`
	Players []PlayerView `json:"players"`
}

type DealerView struct {
	Hand  []Card `json:"hand"`
	Score int    `json:"score"`
}

type PlayerView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Hand     []Card `json:"hand"`
	Score    int    `json:"score"`
	Status   Status `json:"status"`
}

// Broadcaster receives every snapshot produced by a state change.
// Implementations are called with the room lock held and must not block.
type Broadcaster interface {
	Broadcast(code string, view RoomView)
}

// BroadcasterFunc adapts a function to Broadcaster.
type BroadcasterFunc func(code string, view RoomView)

func (f BroadcasterFunc) Broadcast(code string, view RoomView) {
	f(code, view)
}

func copyHand(hand []Card) []Card {
	out := make([]Card, len(hand))
	copy(out, hand)
	return out
}

// viewLocked builds the player-facing view. While players act, the dealer
// shows only the first card and the score of that card.
func (r *Room) viewLocked() RoomView {
	v := RoomView{
		Code:    r.code,
		Phase:   r.phase,
		Players: make([]PlayerView, 0, len(r.players)),
	}
	for _, p := range r.players {
		v.Players = append(v.Players, PlayerView{
			ID:       p.ID,
			Username: p.Username,
			Hand:     copyHand(p.Hand),
			Score:    p.Score,
			Status:   p.Status,
		})
	}

	if r.phase == PhasePlayersTurn && len(r.dealer.Hand) > 0 {
		up := r.dealer.Hand[0]
		v.Dealer = DealerView{
			Hand:  []Card{up, HiddenCard},
			Score: Score([]Card{up}),
		}
		return v
	}
	v.Dealer = DealerView{Hand: copyHand(r.dealer.Hand), Score: r.dealer.Score}
	return v
}

// View returns the filtered snapshot of the room.
func (r *Room) View() RoomView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewLocked()
}

// Seated reports whether the player is part of the room's roster.
func (v RoomView) Seated(playerID string) bool {
	for _, p := range v.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
