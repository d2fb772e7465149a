package game

// TrickWinner resolves a completed trick: the higher rank wins and an exact
// tie awards the trick to neither side.
func TrickWinner(lead, response Play) Side {
	switch {
	case lead.Card > response.Card:
		return lead.Side
	case lead.Card < response.Card:
		return response.Side
	default:
		return NoSide
	}
}
