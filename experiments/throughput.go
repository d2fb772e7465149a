package experiments

import (
	"context"
	"time"

	"judgment/experiments/metrics"
	"judgment/game"
	"judgment/meta"
	"judgment/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RunThroughputExperiment measures episodes per second for a range of
// goroutine counts under the same time budget, searching from one shared deal.
func RunThroughputExperiment(ctx context.Context, seed uint64) ([]metrics.SearchMetric, error) {
	const Duration = 100 * time.Millisecond
	goroutines := []int{1, 2, 4, 8, 16}

	deck := game.NewDeck(meta.DeckRanks(), meta.DECK_COPIES)
	state, err := game.Deal(deck, meta.HAND_SIZE, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log.Info().Msg("starting throughput experiment...")

	results := make([]metrics.SearchMetric, 0, len(goroutines))
	for _, n := range goroutines {
		mcts := searcher.NewMCTS(n, searcher.WithDuration(Duration), searcher.WithSeed(seed), searcher.WithMetrics())
		// Fresh root per configuration so no statistics are reused
		_, metric, err := mcts.Search(ctx, searcher.NewRoot(state), game.Observed)
		if err != nil {
			return results, err
		}
		results = append(results, metric)

		log.Info().
			Int("goroutines", n).
			Int("episodes", metric.Episodes).
			Int("expansions", metric.Expansions).
			Float64("episodes_per_second", float64(metric.Episodes)/metric.Duration.Seconds()).
			Msg("throughput measured")
	}

	log.Info().Str("elapsed", elapsed(start)).Msg("completed throughput experiment")
	return results, nil
}
