package agent

import (
	"context"

	"judgment/experiments/metrics"
	"judgment/game"
	"judgment/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent that plays the searcher's
// recommended move.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(ctx context.Context, node *searcher.Node, side game.Side) (game.Action, metrics.SearchMetric, error) {
	child, metric, err := a.mcts.Search(ctx, node, side)
	if err != nil {
		return game.Action{}, metric, err
	}
	return child.Action(), metric, nil
}
