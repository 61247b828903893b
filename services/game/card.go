package game

import (
	"errors"
	"math/rand"
)

type Suit string

type Rank string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"

	// SuitHidden only appears in filtered views.
	SuitHidden Suit = "hidden"
)

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"

	RankHidden Rank = "?"
)

// Card is a single playing card. Cards are values and never mutated.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	switch c.Suit {
	case Hearts:
		return string(c.Rank) + "♥"
	case Diamonds:
		return string(c.Rank) + "♦"
	case Clubs:
		return string(c.Rank) + "♣"
	case Spades:
		return string(c.Rank) + "♠"
	}
	return "??"
}

// HiddenCard stands in for the dealer's hole card while players act.
var HiddenCard = Card{Suit: SuitHidden, Rank: RankHidden}

var (
	suits = []Suit{Hearts, Diamonds, Clubs, Spades}
	ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

const DeckSize = 52

var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a single 52-card deck consumed from the end.
type Deck struct {
	cards []Card
}

// NewDeck returns the canonical unshuffled deck, suit-major then rank-minor.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return &Deck{cards: cards}
}

// DeckFromCards builds a deck drawing in reverse order of cards, so the last
// element is dealt first.
func DeckFromCards(cards ...Card) *Deck {
	out := make([]Card, len(cards))
	copy(out, cards)
	return &Deck{cards: out}
}

// Shuffle permutes the deck in place. rng.Shuffle is an unbiased Fisher-Yates.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Draw removes and returns the last card of the deck.
func (d *Deck) Draw() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrDeckExhausted
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, nil
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in draw-reverse order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
