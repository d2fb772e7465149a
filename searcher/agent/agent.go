package agent

import (
	"context"

	"judgment/experiments/metrics"
	"judgment/game"
	"judgment/searcher"
)

type Agent interface {
	// FindMove returns the action chosen for side at node and performance
	// metrics (if collected) from the search process. The node may be
	// expanded as a side effect.
	FindMove(ctx context.Context, node *searcher.Node, side game.Side) (game.Action, metrics.SearchMetric, error)
}
