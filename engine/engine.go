package engine

import (
	"context"

	"judgment/experiments/metrics"
	"judgment/game"
)

type Engine interface {
	// Run plays a hand till all cards are played and returns the final utility
	Run(ctx context.Context) (utility game.Utility, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
