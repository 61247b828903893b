package game

import (
	game_constants "Blackjack/constants/game"
	"strconv"
)

func cardValue(c Card) int {
	switch c.Rank {
	case Jack, Queen, King:
		return 10
	case Ace:
		return 11
	}
	v, err := strconv.Atoi(string(c.Rank))
	if err != nil {
		return 0
	}
	return v
}

// Score returns the blackjack value of a hand. Aces count 11 and are
// downgraded to 1, one at a time, while the total is over 21.
func Score(hand []Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		if c.Rank == Ace {
			aces++
		}
		total += cardValue(c)
	}
	for total > game_constants.BlackjackTarget && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsNatural reports a two-card 21.
func IsNatural(hand []Card) bool {
	return len(hand) == 2 && Score(hand) == game_constants.BlackjackTarget
}

func IsBust(score int) bool {
	return score > game_constants.BlackjackTarget
}
