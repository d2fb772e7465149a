package searcher

import (
	"fmt"

	"judgment/game"
)

// Node is one decision point in the search tree: an immutable game state plus
// the search statistics accumulated through it.
//
// A node owns its children. The parent link is a non-owning back-reference
// used only to walk up during backpropagation.
type Node struct {
	state    *game.State
	action   game.Action // Action that produced this node from its parent
	parent   *Node
	children []*Node
	visits   int
	values   game.Utility // Utility sums indexed by side
}

// NewRoot returns a parentless node for the given state.
func NewRoot(state *game.State) *Node {
	return &Node{state: state}
}

func newChild(parent *Node, successor game.Successor) *Node {
	return &Node{
		state:  successor.State,
		action: successor.Action,
		parent: parent,
	}
}

func (n *Node) State() *game.State   { return n.state }
func (n *Node) Action() game.Action  { return n.action }
func (n *Node) Parent() *Node        { return n.parent }
func (n *Node) Children() []*Node    { return n.children }
func (n *Node) Visits() int          { return n.visits }
func (n *Node) Values() game.Utility { return n.values }

// IsTerminal reports whether the node's hand has been played out.
func (n *Node) IsTerminal() bool {
	return n.state.IsTerminal()
}

// Utility scores a terminal node, failing with game.ErrInvalidState otherwise.
func (n *Node) Utility() (game.Utility, error) {
	return n.state.Utility()
}

// Mean returns the average utility per visit for a side, or 0 when the node
// has never been visited.
func (n *Node) Mean(side game.Side) float64 {
	if n.visits == 0 {
		return 0
	}
	return float64(n.values[side]) / float64(n.visits)
}

// GenerateChildren materializes every legal successor of the node. It must be
// called at most once per node and never on a terminal node.
func (n *Node) GenerateChildren() error {
	if len(n.children) > 0 {
		return fmt.Errorf("node %s already expanded: %w", n.state, game.ErrInvalidState)
	}

	successors, err := n.state.Successors()
	if err != nil {
		return err
	}

	n.children = make([]*Node, len(successors))
	for i, successor := range successors {
		n.children[i] = newChild(n, successor)
	}
	return nil
}

// ChildFor returns the first child reached by the given action, or nil if the
// node has no such child.
func (n *Node) ChildFor(action game.Action) *Node {
	for _, child := range n.children {
		if child.action == action {
			return child
		}
	}
	return nil
}

// Detach makes the node the root of its own subtree so that the rest of the
// tree can be discarded. Its statistics are kept for reuse.
func (n *Node) Detach() {
	n.parent = nil
}

func (n *Node) update(utility game.Utility) {
	n.values[game.Observed] += utility[game.Observed]
	n.values[game.Hidden] += utility[game.Hidden]
	n.visits++
}

// merge adds statistics gathered for the same position in another tree.
func (n *Node) merge(visits int, values game.Utility) {
	n.values[game.Observed] += values[game.Observed]
	n.values[game.Hidden] += values[game.Hidden]
	n.visits += visits
}

// backup records a utility at the node and returns its parent.
func (n *Node) backup(utility game.Utility) *Node {
	n.update(utility)
	return n.parent
}
