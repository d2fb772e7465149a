package searcher

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"judgment/experiments/metrics"
	"judgment/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Option func(mcts *MCTS)

type MCTS struct {
	goroutines  int
	duration    time.Duration
	episodes    int
	exploration float64
	final       FinalPolicy
	adversarial bool
	seed        uint64
	metrics     metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithFinalPolicy(policy FinalPolicy) Option {
	return func(m *MCTS) {
		m.final = policy
	}
}

// WithAdversarialSelection makes selection rank children by the mean utility
// of the side acting at the parent instead of the search perspective.
func WithAdversarialSelection() Option {
	return func(m *MCTS) {
		m.adversarial = true
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	if goroutines < 1 {
		goroutines = 1
	}
	m := &MCTS{ // Default values
		goroutines:  goroutines,
		exploration: DefaultExploration,
		final:       DefaultFinalPolicy,
		seed:        uint64(time.Now().UnixNano()),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Search runs a fixed number of episodes from the root and returns the
// recommended child for the perspective side.
func Search(root *Node, iterations int, perspective game.Side) (*Node, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("search needs a positive iteration count, got %d: %w", iterations, game.ErrInvalidState)
	}
	child, _, err := NewMCTS(1, WithEpisodes(iterations)).Search(context.Background(), root, perspective)
	return child, err
}

// Search grows the tree below root and returns the child recommended by the
// final policy along with the search metrics. Statistics already present on
// the root are reused. The episode budget, the duration budget and ctx all
// stop the search, whichever comes first.
func (m *MCTS) Search(ctx context.Context, root *Node, perspective game.Side) (*Node, metrics.SearchMetric, error) {
	if root.IsTerminal() {
		return nil, metrics.SearchMetric{}, fmt.Errorf("search from terminal node %s: %w", root.state, game.ErrInvalidState)
	}
	if perspective != game.Observed && perspective != game.Hidden {
		return nil, metrics.SearchMetric{}, fmt.Errorf("search from perspective %s: %w", perspective, game.ErrInvalidState)
	}

	if m.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.duration)
		defer cancel()
	}

	m.metrics.SetTreeReset(root.visits == 0)
	m.metrics.Start(m.goroutines, m.exploration)
	log.Debug().
		Stringer("state", root.state).
		Stringer("perspective", perspective).
		Int("episodes", m.episodes).
		Dur("duration", m.duration).
		Int("goroutines", m.goroutines).
		Msg("search started")

	var err error
	if m.goroutines == 1 {
		err = m.iterate(ctx, root, perspective, rand.New(rand.NewSource(m.seed)), m.budget())
	} else {
		err = m.parallel(ctx, root, perspective)
	}
	metric := m.metrics.Complete()
	if err != nil {
		return nil, metric, err
	}

	child, err := bestChild(root, perspective, m.final)
	if err != nil {
		return nil, metric, err
	}
	log.Debug().
		Stringer("action", child.action).
		Int("visits", child.visits).
		Float64("mean", child.Mean(perspective)).
		Int("episodes", metric.Episodes).
		Dur("elapsed", metric.Duration).
		Msg("search completed")
	return child, metric, nil
}

// budget returns the shared episode counter, or nil when the search is
// bounded by time only.
func (m *MCTS) budget() *atomic.Int64 {
	if m.episodes <= 0 {
		return nil
	}
	remaining := &atomic.Int64{}
	remaining.Store(int64(m.episodes))
	return remaining
}

func (m *MCTS) iterate(ctx context.Context, root *Node, perspective game.Side, rng *rand.Rand, remaining *atomic.Int64) error {
	for ctx.Err() == nil {
		if remaining != nil && remaining.Add(-1) < 0 {
			return nil
		}
		if err := m.simulate(root, perspective, rng); err != nil {
			return err
		}
		m.metrics.AddEpisode()
	}
	return nil
}

// parallel searches independent private trees, one per goroutine, then folds
// their root-level statistics into the caller's root. Trees are never shared
// between goroutines, so merging is the only write to the caller's tree.
func (m *MCTS) parallel(ctx context.Context, root *Node, perspective game.Side) error {
	remaining := m.budget()
	trees := make([]*Node, m.goroutines)

	g, ctx := errgroup.WithContext(ctx)
	for i := range trees {
		i := i
		trees[i] = NewRoot(root.state)
		rng := rand.New(rand.NewSource(m.seed + uint64(i)))
		g.Go(func() error {
			return m.iterate(ctx, trees[i], perspective, rng, remaining)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, tree := range trees {
		if err := mergeRoots(root, tree); err != nil {
			return err
		}
	}
	return nil
}

// mergeRoots adds the statistics of a private tree's root and its children to
// dst. Both roots hold the same state, so their children line up by index.
func mergeRoots(dst, src *Node) error {
	if src.visits == 0 {
		return nil
	}
	if len(dst.children) == 0 {
		if err := dst.GenerateChildren(); err != nil {
			return err
		}
	}
	if len(dst.children) != len(src.children) {
		log.Warn().Msgf("merging %d children into %d", len(src.children), len(dst.children))
		return fmt.Errorf("merge trees with %d and %d children: %w", len(src.children), len(dst.children), game.ErrInvalidState)
	}

	for i, child := range src.children {
		if dst.children[i].action != child.action {
			return fmt.Errorf("merge child %s into %s: %w", child.action, dst.children[i].action, game.ErrInvalidState)
		}
		dst.children[i].merge(child.visits, child.values)
	}
	dst.merge(src.visits, src.values)
	return nil
}

// simulate runs one episode: selection, expansion, rollout and backup.
func (m *MCTS) simulate(root *Node, perspective game.Side, rng *rand.Rand) error {
	node := m.selection(root, perspective)

	if !node.IsTerminal() {
		if err := node.GenerateChildren(); err != nil {
			return fmt.Errorf("expand %s: %w", node.state, err)
		}
		m.metrics.AddExpansion(len(node.children))
		node = node.children[rng.Intn(len(node.children))]
	}

	utility, err := rollout(node.state, rng)
	if err != nil {
		return err
	}
	m.metrics.AddRollout()

	backup(node, root, utility)
	return nil
}

// selection descends from the root while the current node has children.
func (m *MCTS) selection(root *Node, perspective game.Side) *Node {
	node := root
	for len(node.children) > 0 {
		side := perspective
		if m.adversarial {
			side = node.state.ToAct()
		}
		node = pickChild(node, side, m.exploration)
	}
	return node
}

// rollout plays uniformly random actions from the state until the hand is
// over and returns the terminal utility. Intermediate states are not added to
// the tree.
func rollout(state *game.State, rng *rand.Rand) (game.Utility, error) {
	// Each step fixes a bid or removes a card from the hand or pool
	limit := 2 + 2*state.HandSize
	for depth := 0; !state.IsTerminal(); depth++ {
		if depth > limit {
			return game.Utility{}, fmt.Errorf("rollout from %s exceeded %d steps: %w", state, limit, game.ErrInvalidState)
		}
		successors, err := state.Successors()
		if err != nil {
			return game.Utility{}, fmt.Errorf("rollout: %w", err)
		}
		state = successors[rng.Intn(len(successors))].State
	}
	return state.Utility()
}

// backup adds the utility to every node from node up to and including root.
func backup(node, root *Node, utility game.Utility) {
	for node != nil {
		parent := node.backup(utility)
		if node == root {
			return
		}
		node = parent
	}
}
