package game

type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeLose      Outcome = "lose"
	OutcomePush      Outcome = "push"
	OutcomeBlackjack Outcome = "blackjack"
)

type PlayerOutcome struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Score    int     `json:"score"`
	Outcome  Outcome `json:"outcome"`
}

// ResolveOutcomes settles every dealt player against the dealer of a
// finished view. Players who joined mid-round hold no cards and are skipped.
func ResolveOutcomes(view RoomView) []PlayerOutcome {
	if view.Phase != PhaseFinished {
		return nil
	}

	dealerScore := view.Dealer.Score
	dealerNatural := IsNatural(view.Dealer.Hand)

	out := make([]PlayerOutcome, 0, len(view.Players))
	for _, p := range view.Players {
		if len(p.Hand) == 0 {
			continue
		}
		out = append(out, PlayerOutcome{
			ID:       p.ID,
			Username: p.Username,
			Score:    p.Score,
			Outcome:  settle(p, dealerScore, dealerNatural),
		})
	}
	return out
}

func settle(p PlayerView, dealerScore int, dealerNatural bool) Outcome {
	switch {
	case p.Status == StatusBust || IsBust(p.Score):
		return OutcomeLose
	case p.Status == StatusBlackjack:
		if dealerNatural {
			return OutcomePush
		}
		return OutcomeBlackjack
	case IsBust(dealerScore):
		return OutcomeWin
	case p.Score > dealerScore:
		return OutcomeWin
	case p.Score < dealerScore:
		return OutcomeLose
	}
	return OutcomePush
}
