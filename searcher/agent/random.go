package agent

import (
	"context"

	"judgment/experiments/metrics"
	"judgment/game"
	"judgment/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the legal
// actions. Hidden-side responses range over the whole pool.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(_ context.Context, node *searcher.Node, _ game.Side) (game.Action, metrics.SearchMetric, error) {
	if len(node.Children()) == 0 {
		if err := node.GenerateChildren(); err != nil {
			return game.Action{}, metrics.SearchMetric{}, err
		}
	}
	children := node.Children()
	return children[a.rng.Intn(len(children))].Action(), metrics.SearchMetric{}, nil
}
