package game

import (
	"fmt"
	"slices"
)

// State is an immutable snapshot of one point in a hand of Judgment. Operations
// on State never modify the receiver and always return new copies.
//
// The hidden side's hand is never determinized: every card remaining in Pool
// is treated as a legal response. This information-set approximation is
// intentional.
//
// Build states with NewState or Deal. HandSize must equal the observed hand
// length until the first card is led; Successors rejects states where it
// does not.
type State struct {
	Hand     []Rank // Observed side's remaining cards
	Pool     []Rank // Cards not in Hand and not yet played
	HandSize int    // Cards dealt to each side, the upper bound of a bid
	Bids     [2]int // Bids indexed by Side, NoBid until chosen
	Tricks   [2]int // Tricks won indexed by Side
	Trick    []Play // Trick in progress, at most one card between moves
}

// Successor pairs a legal action with the state it produces.
type Successor struct {
	Action Action
	State  *State
}

// NewState returns the state at the start of a hand, before any bid.
func NewState(hand, pool []Rank) *State {
	return &State{
		Hand:     append([]Rank(nil), hand...),
		Pool:     append([]Rank(nil), pool...),
		HandSize: len(hand),
		Bids:     [2]int{NoBid, NoBid},
	}
}

// Copy returns a deep copy of the state.
func (s *State) Copy() *State {
	return &State{
		Hand:     append([]Rank(nil), s.Hand...),
		Pool:     append([]Rank(nil), s.Pool...),
		HandSize: s.HandSize,
		Bids:     s.Bids,
		Tricks:   s.Tricks,
		Trick:    append([]Play(nil), s.Trick...),
	}
}

// IsTerminal reports whether all cards have been played out.
func (s *State) IsTerminal() bool {
	return len(s.Hand) == 0 && len(s.Trick) == 0
}

// Phase returns the stage of the hand that decides which actions are legal.
func (s *State) Phase() Phase {
	switch {
	case s.Bids[Observed] == NoBid:
		return FirstBidPhase
	case s.Bids[Hidden] == NoBid:
		return SecondBidPhase
	case s.IsTerminal():
		return EndPhase
	case len(s.Trick) == 0:
		return LeadPhase
	default:
		return ResponsePhase
	}
}

// ToAct returns the side whose decision the state is waiting on, or NoSide
// once the hand is over.
func (s *State) ToAct() Side {
	switch s.Phase() {
	case FirstBidPhase, LeadPhase:
		return Observed
	case SecondBidPhase, ResponsePhase:
		return Hidden
	}
	return NoSide
}

// Utility scores a terminal state. Each side's distance from its bid is
// compared with the opponent's, so the side closer to its bid scores
// positively and the pair always sums to zero.
func (s *State) Utility() (Utility, error) {
	if !s.IsTerminal() {
		return Utility{}, fmt.Errorf("utility of non-terminal state %s: %w", s, ErrInvalidState)
	}
	if s.Bids[Observed] == NoBid || s.Bids[Hidden] == NoBid {
		return Utility{}, fmt.Errorf("utility of state %s without both bids: %w", s, ErrInvalidState)
	}
	own := abs(s.Bids[Observed] - s.Tricks[Observed])
	other := abs(s.Bids[Hidden] - s.Tricks[Hidden])
	return Utility{other - own, own - other}, nil
}

// Successors enumerates every legal action and its resulting state, in a
// stable order: bids ascending, then cards in hand or pool order. Duplicate
// ranks in the pool yield one successor per copy.
func (s *State) Successors() ([]Successor, error) {
	if s.IsTerminal() {
		return nil, fmt.Errorf("successors of terminal state %s: %w", s, ErrInvalidState)
	}
	if len(s.Trick) > 1 {
		return nil, fmt.Errorf("trick of %d cards left unresolved: %w", len(s.Trick), ErrInvalidState)
	}
	if len(s.Hand) > s.HandSize || (s.Bids[Hidden] == NoBid && len(s.Hand) != s.HandSize) {
		return nil, fmt.Errorf("hand of %d cards with hand size %d: %w", len(s.Hand), s.HandSize, ErrInvalidState)
	}

	var successors []Successor
	switch s.Phase() {
	case FirstBidPhase, SecondBidPhase:
		side := s.ToAct()
		successors = make([]Successor, 0, s.HandSize+1)
		for bid := 0; bid <= s.HandSize; bid++ {
			successors = append(successors, Successor{Action: NewBid(side, bid), State: s.bid(side, bid)})
		}
	case LeadPhase:
		successors = make([]Successor, 0, len(s.Hand))
		for i, card := range s.Hand {
			successors = append(successors, Successor{Action: NewLead(card), State: s.lead(i)})
		}
	case ResponsePhase:
		successors = make([]Successor, 0, len(s.Pool))
		for i, card := range s.Pool {
			successors = append(successors, Successor{Action: NewResponse(card), State: s.respond(i)})
		}
	}

	if len(successors) == 0 {
		return nil, fmt.Errorf("state %s in %s phase: %w", s, s.Phase(), ErrExhaustedActions)
	}
	return successors, nil
}

// Play applies a single action chosen outside the search, e.g. by an external
// opponent, and returns the resulting state.
func (s *State) Play(action Action) (*State, error) {
	if s.IsTerminal() {
		return nil, fmt.Errorf("play %s on terminal state: %w", action, ErrInvalidState)
	}
	if action.Side != s.ToAct() {
		return nil, fmt.Errorf("play %s while %s side is to act: %w", action, s.ToAct(), ErrInvalidState)
	}

	phase := s.Phase()
	switch {
	case action.Type == BidAction && (phase == FirstBidPhase || phase == SecondBidPhase):
		if action.Bid < 0 || action.Bid > s.HandSize {
			return nil, fmt.Errorf("bid %d outside [0, %d]: %w", action.Bid, s.HandSize, ErrInvalidState)
		}
		return s.bid(action.Side, action.Bid), nil
	case action.Type == LeadAction && phase == LeadPhase:
		i := slices.Index(s.Hand, action.Card)
		if i < 0 {
			return nil, fmt.Errorf("lead %s not in hand %v: %w", action.Card, s.Hand, ErrInvalidState)
		}
		return s.lead(i), nil
	case action.Type == RespondAction && phase == ResponsePhase:
		i := slices.Index(s.Pool, action.Card)
		if i < 0 {
			return nil, fmt.Errorf("response %s not in pool %v: %w", action.Card, s.Pool, ErrInvalidState)
		}
		return s.respond(i), nil
	}
	return nil, fmt.Errorf("%s not legal in %s phase: %w", action, phase, ErrInvalidState)
}

func (s *State) bid(side Side, bid int) *State {
	child := s.Copy()
	child.Bids[side] = bid
	return child
}

func (s *State) lead(i int) *State {
	child := s.Copy()
	child.Hand = without(s.Hand, i)
	child.Trick = []Play{{Side: Observed, Card: s.Hand[i]}}
	return child
}

// respond completes the trick with the i-th pool card and resolves it at once,
// so a successor never carries a full trick.
func (s *State) respond(i int) *State {
	child := s.Copy()
	child.Pool = without(s.Pool, i)
	response := Play{Side: Hidden, Card: s.Pool[i]}
	if winner := TrickWinner(s.Trick[0], response); winner != NoSide {
		child.Tricks[winner]++
	}
	child.Trick = nil
	return child
}

func (s *State) String() string {
	return fmt.Sprintf("{hand: %v, pool: %v, bids: %s, tricks: %v, trick: %v}",
		s.Hand, s.Pool, formatBids(s.Bids), s.Tricks, s.Trick)
}

func formatBids(bids [2]int) string {
	out := [2]string{"-", "-"}
	for i, bid := range bids {
		if bid != NoBid {
			out[i] = fmt.Sprint(bid)
		}
	}
	return fmt.Sprintf("[%s %s]", out[0], out[1])
}

// without returns a copy of cards with the i-th card removed.
func without(cards []Rank, i int) []Rank {
	out := make([]Rank, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	return append(out, cards[i+1:]...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
