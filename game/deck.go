package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Deck is an unordered multiset of card ranks.
type Deck []Rank

// NewDeck returns a deck with the given number of copies of each rank.
func NewDeck(ranks []Rank, copies int) Deck {
	deck := make(Deck, 0, len(ranks)*copies)
	for i := 0; i < copies; i++ {
		deck = append(deck, ranks...)
	}
	return deck
}

// RankRange returns the ranks from low to high inclusive.
func RankRange(low, high Rank) []Rank {
	var ranks []Rank
	for r := low; r <= high; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Deal shuffles a copy of the deck, hands the first handSize cards to the
// observed side and leaves the rest as the pool standing in for the hidden
// side's hand. The pool must be able to answer every lead.
func Deal(deck Deck, handSize int, rng *rand.Rand) (*State, error) {
	if handSize < 1 {
		return nil, fmt.Errorf("hand size %d must be positive: %w", handSize, ErrInvalidState)
	}
	if len(deck) < 2*handSize {
		return nil, fmt.Errorf("deck of %d cards cannot deal two hands of %d: %w", len(deck), handSize, ErrInvalidState)
	}

	shuffled := append(Deck(nil), deck...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return NewState(shuffled[:handSize], shuffled[handSize:]), nil
}
