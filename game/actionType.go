package game

import "fmt"

// ActionType represents the kind of decision taken at a node.
type ActionType int

const (
	BidAction     ActionType = iota // Fix a side's bid
	LeadAction                      // Observed side leads a card from its hand
	RespondAction                   // Hidden side answers with a card from the pool
)

func (t ActionType) String() string {
	switch t {
	case BidAction:
		return "bid"
	case LeadAction:
		return "lead"
	case RespondAction:
		return "respond"
	}
	return "unknown"
}

// Action is the decision that leads from a state to one of its successors.
// Bid is only meaningful for BidAction and Card only for the card plays.
type Action struct {
	Type ActionType
	Side Side
	Bid  int
	Card Rank
}

// NewBid returns a bid action for the given side.
func NewBid(side Side, bid int) Action {
	return Action{Type: BidAction, Side: side, Bid: bid}
}

// NewLead returns a lead action, always played by the observed side.
func NewLead(card Rank) Action {
	return Action{Type: LeadAction, Side: Observed, Card: card}
}

// NewResponse returns a response action, always played by the hidden side.
func NewResponse(card Rank) Action {
	return Action{Type: RespondAction, Side: Hidden, Card: card}
}

func (a Action) String() string {
	if a.Type == BidAction {
		return fmt.Sprintf("%s %s %d", a.Side, a.Type, a.Bid)
	}
	return fmt.Sprintf("%s %s %s", a.Side, a.Type, a.Card)
}
