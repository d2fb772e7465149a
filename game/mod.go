package game

import "errors"

var (
	// ErrInvalidState is returned when an operation is applied to a state that
	// does not satisfy its precondition, e.g. scoring a non-terminal state.
	ErrInvalidState = errors.New("invalid state")
	// ErrExhaustedActions signals a non-terminal state without any legal
	// successor. It is an upstream invariant violation and is not recoverable.
	ErrExhaustedActions = errors.New("no legal actions in non-terminal state")
)

// Phase is the stage of a hand a state is in, in order of precedence.
type Phase int

const (
	FirstBidPhase  Phase = iota // Observed side has not bid
	SecondBidPhase              // Hidden side has not bid
	LeadPhase                   // No trick in progress, observed side leads
	ResponsePhase               // One card in the trick, hidden side responds
	EndPhase                    // All cards played
)

func (p Phase) String() string {
	switch p {
	case FirstBidPhase:
		return "first bid"
	case SecondBidPhase:
		return "second bid"
	case LeadPhase:
		return "lead"
	case ResponsePhase:
		return "response"
	case EndPhase:
		return "end"
	}
	return "unknown"
}

// NoBid marks a bid that has not been chosen yet.
const NoBid = -1

// Utility is a terminal score pair indexed by Side. It is always zero-sum.
type Utility [2]int

// Of returns the score of one side.
func (u Utility) Of(side Side) int {
	return u[side]
}
