package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck(RankRange(1, 5), 2)

	require.Len(t, deck, 10)
	require.ElementsMatch(t, Deck{1, 1, 2, 2, 3, 3, 4, 4, 5, 5}, deck)
}

func TestDeal(t *testing.T) {
	t.Run("splits the deck into hand and pool", func(t *testing.T) {
		deck := NewDeck(RankRange(1, 5), 2)

		s, err := Deal(deck, 3, rand.New(rand.NewSource(1)))

		require.NoError(t, err)
		require.Len(t, s.Hand, 3)
		require.Len(t, s.Pool, 7)
		require.Equal(t, 3, s.HandSize)
		require.Equal(t, [2]int{NoBid, NoBid}, s.Bids)
		require.ElementsMatch(t, []Rank(deck), append(append([]Rank(nil), s.Hand...), s.Pool...), "No card should be lost or added")
	})

	t.Run("same seed deals the same hand", func(t *testing.T) {
		deck := NewDeck(RankRange(2, 14), 1)

		s1, err := Deal(deck, 5, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		s2, err := Deal(deck, 5, rand.New(rand.NewSource(42)))
		require.NoError(t, err)

		require.Equal(t, s1.Hand, s2.Hand)
	})

	t.Run("rejects a deck too small for two hands", func(t *testing.T) {
		_, err := Deal(Deck{1, 2, 3}, 2, rand.New(rand.NewSource(1)))

		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("rejects an empty hand", func(t *testing.T) {
		_, err := Deal(Deck{1, 2}, 0, rand.New(rand.NewSource(1)))

		require.ErrorIs(t, err, ErrInvalidState)
	})
}
