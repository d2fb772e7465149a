package metrics

import (
	"time"

	"judgment/game"
)

type AgentKind int

const (
	MCTSAgent     AgentKind = iota // Plays the searcher's recommended move
	TrainingAgent                  // Samples from the root visit distribution
	RandomAgent                    // Uniformly random legal moves
)

func (k AgentKind) String() string {
	switch k {
	case MCTSAgent:
		return "mcts"
	case TrainingAgent:
		return "training"
	case RandomAgent:
		return "random"
	}
	return "unknown"
}

type AgentConfig struct {
	ID          int
	Kind        AgentKind
	Goroutines  int
	Duration    time.Duration
	Episodes    int
	Exploration float64 // Zero keeps the searcher default
	Adversarial bool
	Temperature float64 // TrainingAgent only
}

type GameRecord struct {
	ID       int
	Observed int // AgentConfig.ID of the observed side
	Hidden   int // AgentConfig.ID of the hidden side
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Summary aggregates the utilities one agent collected over a set of games.
type Summary struct {
	Games  int
	Wins   int
	Draws  int
	Losses int
	Total  int
	Mean   float64
}

// Summarize collects the utility of the agent with the given ID from every
// game it took part in.
func Summarize(records []GameRecord, agentID int) Summary {
	var s Summary
	for _, record := range records {
		var side game.Side
		switch agentID {
		case record.Observed:
			side = game.Observed
		case record.Hidden:
			side = game.Hidden
		default:
			continue
		}

		u := record.Utility.Of(side)
		s.Games++
		s.Total += u
		switch {
		case u > 0:
			s.Wins++
		case u < 0:
			s.Losses++
		default:
			s.Draws++
		}
	}
	if s.Games > 0 {
		s.Mean = float64(s.Total) / float64(s.Games)
	}
	return s
}
