package game

import "strconv"

// Rank is a card's numeric rank. Numerals count at face value and the court
// cards follow in increasing order J, Q, K, A.
type Rank int

const (
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return strconv.Itoa(int(r))
}

// Side identifies one of the two players.
type Side int

const (
	NoSide   Side = -1
	Observed Side = 0 // The perspective player whose hand is fully known
	Hidden   Side = 1 // The opponent, whose hand is abstracted as the remaining pool
)

func (s Side) String() string {
	switch s {
	case Observed:
		return "observed"
	case Hidden:
		return "hidden"
	}
	return "none"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	switch s {
	case Observed:
		return Hidden
	case Hidden:
		return Observed
	}
	return NoSide
}

// Play is one card laid into the trick in progress.
type Play struct {
	Side Side
	Card Rank
}
