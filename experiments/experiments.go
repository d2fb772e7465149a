package experiments

import (
	"context"
	"fmt"
	"time"

	"judgment/engine"
	"judgment/experiments/metrics"
	"judgment/game"
	"judgment/meta"
	"judgment/searcher"
	"judgment/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var baseline = metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent}

var strengthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.MCTSAgent, Goroutines: 1, Episodes: 100},
	{ID: 2, Kind: metrics.MCTSAgent, Goroutines: 1, Episodes: meta.EPISODES},
	{ID: 3, Kind: metrics.MCTSAgent, Goroutines: 1, Episodes: meta.EPISODES, Adversarial: true},
	{ID: 4, Kind: metrics.MCTSAgent, Goroutines: meta.GO_ROUTINES, Episodes: meta.EPISODES},
	{ID: 5, Kind: metrics.TrainingAgent, Goroutines: 1, Episodes: meta.EPISODES, Temperature: 1.0},
}

// Result holds everything recorded by one experiment run.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// RunStrengthExperiment pairs every search agent against the random baseline,
// once with the search agent holding the observed hand (acting first) and
// once acting second from the hidden side.
func RunStrengthExperiment(ctx context.Context, seed uint64) (Result, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range strengthConfigs {
		matchUps = append(matchUps,
			[]metrics.AgentConfig{config, baseline},
			[]metrics.AgentConfig{baseline, config},
		)
	}

	result, err := runExperiment(ctx, "strength", matchUps, meta.NUM_GAMES, seed)
	if err != nil {
		return result, err
	}
	for _, config := range strengthConfigs {
		summary := metrics.Summarize(result.Games, config.ID)
		log.Info().
			Int("agent", config.ID).
			Stringer("kind", config.Kind).
			Int("games", summary.Games).
			Int("wins", summary.Wins).
			Int("draws", summary.Draws).
			Int("losses", summary.Losses).
			Int("total", summary.Total).
			Float64("mean", summary.Mean).
			Msg("agent summary")
	}
	return result, nil
}

func runExperiment(ctx context.Context, name string, matchUps [][]metrics.AgentConfig, numGames int, seed uint64) (Result, error) {
	rng := rand.New(rand.NewSource(seed))
	deck := game.NewDeck(meta.DeckRanks(), meta.DECK_COPIES)

	// Run a number of games for each matchup
	var result Result
	count := 0

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		observed, hidden := matchup[0], matchup[1]

		log.Info().Msgf("starting matchup %d of %d between observed=%+v and hidden=%+v...", mi+1, len(matchUps), observed, hidden)

		cumulative := game.Utility{}
		for i := 0; i < numGames; i++ {
			state, err := game.Deal(deck, meta.HAND_SIZE, rng)
			if err != nil {
				return result, err
			}

			utility, gameMetric, moveMetrics, err := runGame(ctx, state, observed, hidden, rng.Uint64())
			if err != nil {
				return result, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			cumulative[game.Observed] += utility[game.Observed]
			cumulative[game.Hidden] += utility[game.Hidden]

			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Observed:   observed.ID,
				Hidden:     hidden.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
		log.Info().
			Int("matchup", mi+1).
			Int("observed_total", cumulative[game.Observed]).
			Int("hidden_total", cumulative[game.Hidden]).
			Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)
	return result, nil
}

// runGame executes a single hand between two agents and returns the utility
func runGame(ctx context.Context, state *game.State, observed, hidden metrics.AgentConfig, seed uint64) (game.Utility, metrics.GameMetric, []metrics.MoveMetric, error) {
	mctsSide := game.NoSide
	switch {
	case observed.Kind != metrics.RandomAgent:
		mctsSide = game.Observed
	case hidden.Kind != metrics.RandomAgent:
		mctsSide = game.Hidden
	}

	agents := []agent.Agent{
		createAgent(observed, seed),
		createAgent(hidden, seed+1),
	}
	e := engine.LocalEngine(state, agents, mctsSide)

	return e.Run(ctx)
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandomAgent(rand.New(rand.NewSource(seed)))
	case metrics.TrainingAgent:
		return agent.NewTrainingAgent(createMCTS(config, seed), config.Temperature, rand.New(rand.NewSource(seed)))
	default:
		return agent.NewEvaluationAgent(createMCTS(config, seed))
	}
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Adversarial {
		options = append(options, searcher.WithAdversarialSelection())
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}

// elapsed formats a duration for log lines.
func elapsed(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
