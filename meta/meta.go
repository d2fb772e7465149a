// meta/meta.go
package meta

import "judgment/game"

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 4

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 1000

// HAND_SIZE defines the number of cards dealt to each side.
const HAND_SIZE = 3

// DECK_COPIES defines how many copies of each rank the deck holds.
const DECK_COPIES = 2

// NUM_GAMES defines the number of games per matchup.
const NUM_GAMES = 100

// LOG_LEVEL defines the global zerolog level name.
const LOG_LEVEL = "info"

// DeckRanks returns the ranks used by the default deck.
func DeckRanks() []game.Rank {
	return game.RankRange(1, 5)
}
