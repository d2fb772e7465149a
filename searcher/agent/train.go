package agent

import (
	"context"
	"fmt"
	"math"

	"judgment/experiments/metrics"
	"judgment/game"
	"judgment/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play that samples its move
// from the root visit distribution sharpened by the temperature.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, rng *rand.Rand) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return trainingAgent{mcts: mcts, temperature: temperature, rng: rng}
}

func (a trainingAgent) FindMove(ctx context.Context, node *searcher.Node, side game.Side) (game.Action, metrics.SearchMetric, error) {
	_, metric, err := a.mcts.Search(ctx, node, side)
	if err != nil {
		return game.Action{}, metric, err
	}

	// TODO: decay the temperature as self-play progresses
	policy := adjustTemperature(visitPolicy(node), a.temperature)
	if len(policy) == 0 {
		return game.Action{}, metric, fmt.Errorf("no visited moves at %s: %w", node.State(), game.ErrInvalidState)
	}
	return sample(policy, a.rng.Float64()), metric, nil
}

type weightedAction struct {
	action game.Action
	weight float64
}

// visitPolicy lists the visited children's actions weighted by visit count,
// in child order.
func visitPolicy(node *searcher.Node) []weightedAction {
	policy := make([]weightedAction, 0, len(node.Children()))
	for _, child := range node.Children() {
		if child.Visits() > 0 {
			policy = append(policy, weightedAction{action: child.Action(), weight: float64(child.Visits())})
		}
	}
	return policy
}

func adjustTemperature(policy []weightedAction, temperature float64) []weightedAction {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]weightedAction, len(policy))
	for i, wa := range policy {
		prob := math.Pow(wa.weight, exponent)
		sum += prob
		adjusted[i] = weightedAction{action: wa.action, weight: prob}
	}
	// Normalize
	for i := range adjusted {
		adjusted[i].weight /= sum
	}
	return adjusted
}

// sample picks an action given a uniform draw in [0, 1).
func sample(policy []weightedAction, sampled float64) game.Action {
	cumulative := 0.0
	for _, wa := range policy {
		cumulative += wa.weight
		if sampled < cumulative {
			return wa.action
		}
	}
	return policy[len(policy)-1].action // Fallback in case of rounding errors
}
