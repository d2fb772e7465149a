package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func bidState(hand, pool []Rank, bids [2]int) *State {
	s := NewState(hand, pool)
	s.Bids = bids
	return s
}

func TestIsTerminal(t *testing.T) {
	t.Run("empty hand and no trick", func(t *testing.T) {
		s := &State{Pool: []Rank{3}, Bids: [2]int{0, 0}}
		require.True(t, s.IsTerminal(), "State with no cards left to play should be terminal")
	})

	t.Run("cards left in hand", func(t *testing.T) {
		s := bidState([]Rank{5}, []Rank{9}, [2]int{0, 0})
		require.False(t, s.IsTerminal(), "State with cards in hand should not be terminal")
	})

	t.Run("pending trick card", func(t *testing.T) {
		s := &State{Pool: []Rank{9}, Bids: [2]int{0, 0}, Trick: []Play{{Side: Observed, Card: 5}}}
		require.False(t, s.IsTerminal(), "State with a pending trick should not be terminal")
	})
}

func TestUtility(t *testing.T) {
	t.Run("closer side scores positively", func(t *testing.T) {
		s := &State{Bids: [2]int{2, 2}, Tricks: [2]int{2, 1}}

		got, err := s.Utility()

		require.NoError(t, err)
		require.Equal(t, Utility{1, -1}, got, "Diffs (0, 1) should score (1, -1)")
	})

	t.Run("equal closeness is a draw", func(t *testing.T) {
		s := &State{Bids: [2]int{1, 1}, Tricks: [2]int{1, 1}}

		got, err := s.Utility()

		require.NoError(t, err)
		require.Equal(t, Utility{0, 0}, got)
	})

	t.Run("zero-sum for every bid and trick split", func(t *testing.T) {
		for b0 := 0; b0 <= 3; b0++ {
			for b1 := 0; b1 <= 3; b1++ {
				for t0 := 0; t0 <= 3; t0++ {
					s := &State{Bids: [2]int{b0, b1}, Tricks: [2]int{t0, 3 - t0}}
					got, err := s.Utility()
					require.NoError(t, err)
					require.Equal(t, -got[Observed], got[Hidden], "Utility of %s should be zero-sum", s)
				}
			}
		}
	})

	t.Run("fails on non-terminal state", func(t *testing.T) {
		s := bidState([]Rank{5}, []Rank{9}, [2]int{0, 0})

		_, err := s.Utility()

		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("fails without both bids", func(t *testing.T) {
		s := &State{Bids: [2]int{1, NoBid}}

		_, err := s.Utility()

		require.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestSuccessors(t *testing.T) {
	hand := []Rank{2, 7, Ace}
	pool := []Rank{3, 7, 7, King}

	t.Run("first bid yields one child per bid", func(t *testing.T) {
		s := NewState(hand, pool)

		got, err := s.Successors()

		require.NoError(t, err)
		require.Len(t, got, len(hand)+1, "Should branch into bids 0..hand size")
		for bid, successor := range got {
			require.Equal(t, NewBid(Observed, bid), successor.Action)
			require.Equal(t, [2]int{bid, NoBid}, successor.State.Bids)
			require.Equal(t, hand, successor.State.Hand, "Hand should be unchanged")
			require.Equal(t, pool, successor.State.Pool, "Pool should be unchanged")
		}
	})

	t.Run("second bid yields one child per bid", func(t *testing.T) {
		s := bidState(hand, pool, [2]int{1, NoBid})

		got, err := s.Successors()

		require.NoError(t, err)
		require.Len(t, got, len(hand)+1)
		for bid, successor := range got {
			require.Equal(t, NewBid(Hidden, bid), successor.Action)
			require.Equal(t, [2]int{1, bid}, successor.State.Bids)
		}
	})

	t.Run("lead yields one child per card in hand", func(t *testing.T) {
		s := bidState(hand, pool, [2]int{1, 2})

		got, err := s.Successors()

		require.NoError(t, err)
		require.Len(t, got, len(hand))
		for i, successor := range got {
			require.Equal(t, NewLead(hand[i]), successor.Action)
			require.Len(t, successor.State.Hand, len(hand)-1, "Hand should shrink by exactly one card")
			require.Equal(t, pool, successor.State.Pool, "Pool should be unchanged")
			require.Equal(t, []Play{{Side: Observed, Card: hand[i]}}, successor.State.Trick)
		}
		require.Equal(t, []Rank{2, 7, Ace}, s.Hand, "Parent hand should not be modified")
	})

	t.Run("response yields one child per pool card and resolves the trick", func(t *testing.T) {
		s := bidState([]Rank{2, Ace}, pool, [2]int{1, 2})
		s.Trick = []Play{{Side: Observed, Card: 7}}

		got, err := s.Successors()

		require.NoError(t, err)
		require.Len(t, got, len(pool), "Duplicate ranks in the pool should each yield a child")
		wantTricks := [][2]int{{1, 0}, {0, 0}, {0, 0}, {0, 1}}
		for i, successor := range got {
			require.Equal(t, NewResponse(pool[i]), successor.Action)
			require.Len(t, successor.State.Pool, len(pool)-1, "Pool should shrink by exactly one card")
			require.Equal(t, s.Hand, successor.State.Hand, "Hand should be unchanged")
			require.Empty(t, successor.State.Trick, "Trick should be cleared once resolved")
			require.Equal(t, wantTricks[i], successor.State.Tricks)
		}
	})

	t.Run("each step changes exactly one of bids, hand or pool", func(t *testing.T) {
		s := NewState(hand, pool)
		for !s.IsTerminal() {
			successors, err := s.Successors()
			require.NoError(t, err)
			for _, successor := range successors {
				changes := 0
				if successor.State.Bids != s.Bids {
					changes++
				}
				if len(successor.State.Hand) == len(s.Hand)-1 {
					changes++
				}
				if len(successor.State.Pool) == len(s.Pool)-1 {
					changes++
				}
				require.Equal(t, 1, changes, "Successor %s of %s should change exactly one component", successor.State, s)
			}
			s = successors[len(successors)-1].State
		}
	})

	t.Run("fails on terminal state", func(t *testing.T) {
		s := &State{Bids: [2]int{0, 0}}

		_, err := s.Successors()

		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("fails when the hand size disagrees with the hand", func(t *testing.T) {
		s := &State{Hand: []Rank{2, 3}, Pool: []Rank{4, 5}, HandSize: 1, Bids: [2]int{NoBid, NoBid}}

		_, err := s.Successors()

		require.ErrorIs(t, err, ErrInvalidState, "Bidding before any lead needs the full hand")

		s = bidState([]Rank{2, 3}, []Rank{4, 5}, [2]int{1, 1})
		s.HandSize = 1

		_, err = s.Successors()

		require.ErrorIs(t, err, ErrInvalidState, "A hand can never hold more than was dealt")
	})

	t.Run("fails loudly when the pool cannot respond", func(t *testing.T) {
		s := bidState([]Rank{2}, nil, [2]int{0, 0})
		s.Trick = []Play{{Side: Observed, Card: 5}}

		_, err := s.Successors()

		require.ErrorIs(t, err, ErrExhaustedActions)
	})
}

func TestSingleCardHand(t *testing.T) {
	s := NewState([]Rank{5}, []Rank{9})
	s, err := s.Play(NewBid(Observed, 0))
	require.NoError(t, err)
	s, err = s.Play(NewBid(Hidden, 0))
	require.NoError(t, err)

	leads, err := s.Successors()
	require.NoError(t, err)
	require.Len(t, leads, 1, "Only the 5 can be led")
	require.Equal(t, NewLead(5), leads[0].Action)

	responses, err := leads[0].State.Successors()
	require.NoError(t, err)
	require.Len(t, responses, 1, "Only the 9 can respond")

	end := responses[0].State
	require.True(t, end.IsTerminal())
	require.Equal(t, [2]int{0, 1}, end.Tricks, "9 beats 5 so the hidden side takes the trick")

	got, err := end.Utility()
	require.NoError(t, err)
	require.Equal(t, Utility{1, -1}, got)
}

func TestPlay(t *testing.T) {
	t.Run("rejects the wrong side", func(t *testing.T) {
		s := NewState([]Rank{5}, []Rank{9})

		_, err := s.Play(NewBid(Hidden, 0))

		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("rejects a bid above the hand size", func(t *testing.T) {
		s := NewState([]Rank{5}, []Rank{9})

		_, err := s.Play(NewBid(Observed, 2))

		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("rejects a card not held", func(t *testing.T) {
		s := bidState([]Rank{5}, []Rank{9}, [2]int{0, 0})

		_, err := s.Play(NewLead(9))

		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("removes a single copy of a duplicated rank", func(t *testing.T) {
		s := bidState([]Rank{5}, []Rank{9, 9, 3}, [2]int{0, 0})
		s.Trick = []Play{{Side: Observed, Card: 5}}

		got, err := s.Play(NewResponse(9))

		require.NoError(t, err)
		require.Equal(t, []Rank{9, 3}, got.Pool)
		require.Equal(t, [2]int{0, 1}, got.Tricks)
	})
}

func TestPhaseAndToAct(t *testing.T) {
	s := NewState([]Rank{5}, []Rank{9})
	require.Equal(t, FirstBidPhase, s.Phase())
	require.Equal(t, Observed, s.ToAct())

	s.Bids[Observed] = 0
	require.Equal(t, SecondBidPhase, s.Phase())
	require.Equal(t, Hidden, s.ToAct())

	s.Bids[Hidden] = 1
	require.Equal(t, LeadPhase, s.Phase())
	require.Equal(t, Observed, s.ToAct())

	s.Hand = nil
	s.Trick = []Play{{Side: Observed, Card: 5}}
	require.Equal(t, ResponsePhase, s.Phase())
	require.Equal(t, Hidden, s.ToAct())

	s.Trick = nil
	require.Equal(t, EndPhase, s.Phase())
	require.Equal(t, NoSide, s.ToAct())
}

func TestTrickWinner(t *testing.T) {
	lead := Play{Side: Observed, Card: Queen}

	require.Equal(t, Observed, TrickWinner(lead, Play{Side: Hidden, Card: Jack}))
	require.Equal(t, Hidden, TrickWinner(lead, Play{Side: Hidden, Card: King}))
	require.Equal(t, NoSide, TrickWinner(lead, Play{Side: Hidden, Card: Queen}), "Tied ranks should award neither side")
}

func TestRankString(t *testing.T) {
	require.Equal(t, "10", Rank(10).String())
	require.Equal(t, "J", Jack.String())
	require.Equal(t, "Q", Queen.String())
	require.Equal(t, "K", King.String())
	require.Equal(t, "A", Ace.String())
}
