package engine

import (
	"context"
	"fmt"
	"time"

	"judgment/experiments/metrics"
	"judgment/game"
	"judgment/searcher"
	"judgment/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Local alternates two agents over one shared search tree. Each move walks
// into the chosen child and detaches it, so earlier siblings are discarded
// while the chosen subtree's statistics carry over to the next search.
type Local struct {
	State    *game.State
	Agents   []agent.Agent // Indexed by game.Side
	MCTSSide game.Side     // Recorded in the game metric only
}

var _ Engine = (*Local)(nil)

func LocalEngine(state *game.State, agents []agent.Agent, mctsSide game.Side) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	return &Local{
		State:    state,
		Agents:   agents,
		MCTSSide: mctsSide,
	}
}

// Run executes the hand until the node reached is terminal.
func (e *Local) Run(ctx context.Context) (game.Utility, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		MCTSSide:  e.MCTSSide,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	node := searcher.NewRoot(e.State)
	for step := 1; !node.IsTerminal(); step++ {
		side := node.State().ToAct()

		action, searchMetric, err := e.Agents[side].FindMove(ctx, node, side)
		if err != nil {
			return game.Utility{}, gameMetric, moveMetrics, fmt.Errorf("step %d, %s to act: %w", step, side, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         side,
			Action:       action,
			SearchMetric: searchMetric,
		})

		next, err := advance(node, action)
		if err != nil {
			return game.Utility{}, gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}
		log.Debug().Int("step", step).Stringer("action", action).Stringer("state", next.State()).Msg("move played")

		node = next
	}

	utility, err := node.Utility()
	if err != nil {
		return game.Utility{}, gameMetric, moveMetrics, err
	}

	gameMetric.Utility = utility
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return utility, gameMetric, moveMetrics, nil
}

// advance returns the detached child of node reached by action, expanding the
// node first if no agent has done so.
func advance(node *searcher.Node, action game.Action) (*searcher.Node, error) {
	if len(node.Children()) == 0 {
		if err := node.GenerateChildren(); err != nil {
			return nil, err
		}
	}
	child := node.ChildFor(action)
	if child == nil {
		return nil, fmt.Errorf("action %s is not legal at %s: %w", action, node.State(), game.ErrInvalidState)
	}
	child.Detach()
	return child, nil
}
