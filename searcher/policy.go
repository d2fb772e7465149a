package searcher

import (
	"fmt"
	"math"

	"judgment/game"
)

// FinalPolicy decides which root child is recommended once the search budget
// is spent.
type FinalPolicy int

const (
	// MeanValue picks the child with the highest utility per visit. Unvisited
	// children are never picked while a visited one exists.
	MeanValue FinalPolicy = iota
	// TotalValue picks the child with the highest raw utility sum. It favours
	// children visited most often rather than those performing best per visit.
	TotalValue
	// MostVisited picks the child visited most often.
	MostVisited
)

func (p FinalPolicy) String() string {
	switch p {
	case MeanValue:
		return "mean"
	case TotalValue:
		return "total"
	case MostVisited:
		return "visits"
	}
	return "unknown"
}

// ucb1 = rewards/visits + sqrt(normalizer/visits), where normalizer is
// 2*C^2*ln(N) for parent visits N, i.e. C*sqrt(2*ln(N)/visits).
func ucb1(rewards float64, visits int, normalizer float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(normalizer/float64(visits))
}

func normalizer(exploration float64, parentVisits int) float64 {
	return 2 * exploration * exploration * math.Log(float64(parentVisits))
}

// pickChild returns the child maximizing UCT for the given side. Ties go to
// the earliest child, so unvisited children are sampled in order.
func pickChild(n *Node, side game.Side, exploration float64) *Node {
	if len(n.children) == 0 {
		panic("cannot pick from a node without children")
	}

	c2LnN := 0.0
	if n.visits > 0 {
		c2LnN = normalizer(exploration, n.visits)
	}

	var best *Node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		score := ucb1(float64(child.values[side]), child.visits, c2LnN)
		if score == math.Inf(1) {
			return child
		}
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// bestChild applies a final policy to the children of the root.
func bestChild(root *Node, side game.Side, policy FinalPolicy) (*Node, error) {
	if len(root.children) == 0 {
		return nil, fmt.Errorf("root %s has no children to choose from: %w", root.state, game.ErrInvalidState)
	}

	var best *Node
	bestScore := math.Inf(-1)
	for _, child := range root.children {
		var score float64
		switch policy {
		case TotalValue:
			score = float64(child.values[side])
		case MostVisited:
			score = float64(child.visits)
		default:
			if child.visits == 0 {
				continue
			}
			score = child.Mean(side)
		}
		if best == nil || score > bestScore {
			bestScore = score
			best = child
		}
	}

	if best == nil { // Nothing visited under MeanValue
		return nil, fmt.Errorf("root %s has no visited children: %w", root.state, game.ErrInvalidState)
	}
	return best, nil
}
