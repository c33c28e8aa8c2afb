package planner

import (
	"math"

	"github.com/natesimon/sampling-based-planners/spatial"
)

// node is one entry in a tree arena: a configuration, a parent index
// (rootParent for the tree root), and the accumulated cost from the root
// along parent links (spec §3).
type node struct {
	state  spatial.State
	parent int
	cost   float64
}

// rootParent marks a node with no parent, i.e. the tree root. Using a
// sentinel index rather than a pointer keeps the tree an append-only
// slice. A node's parent index is lower than its own when the node is
// added; rewiring (setParent) can later point it at a node appended
// after it.
const rootParent = -1

// tree is an append-only arena of nodes, supporting the linear
// nearest-neighbor and radius queries the planners need (spec §3, §9).
type tree struct {
	nodes []node
}

// newTree creates a tree with a single root node at start, cost zero.
func newTree(start spatial.State) *tree {
	return &tree{nodes: []node{{state: start, parent: rootParent, cost: 0}}}
}

// size returns the number of nodes currently in the tree.
func (t *tree) size() int {
	return len(t.nodes)
}

// state returns the configuration at index i.
func (t *tree) state(i int) spatial.State {
	return t.nodes[i].state
}

// cost returns the accumulated cost at index i.
func (t *tree) cost(i int) float64 {
	return t.nodes[i].cost
}

// setCost overwrites the accumulated cost at index i, used by rewiring.
func (t *tree) setCost(i int, cost float64) {
	t.nodes[i].cost = cost
}

// parent returns the parent index of node i, or rootParent if i is the root.
func (t *tree) parent(i int) int {
	return t.nodes[i].parent
}

// setParent overwrites the parent index of node i, used by rewiring.
// Callers are responsible for keeping the tree acyclic; rewiring points
// node i at the node just appended, whose index is higher than i.
func (t *tree) setParent(i, parent int) {
	t.nodes[i].parent = parent
}

// add appends a new node and returns its index.
func (t *tree) add(state spatial.State, parent int, cost float64) int {
	t.nodes = append(t.nodes, node{state: state, parent: parent, cost: cost})
	return len(t.nodes) - 1
}

// nearest returns the index of the node closest to target by Euclidean
// distance, breaking ties in favor of the first (lowest-index) match, per
// spec §4.5's deterministic tie-breaking requirement.
func (t *tree) nearest(target spatial.State) int {
	best := 0
	bestDist := math.Inf(1)
	for i, n := range t.nodes {
		if d := n.state.Distance(target); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// near returns the indices of every node within radius of target. For an
// empty tree (never the case in practice, since the root always exists)
// it returns nil.
func (t *tree) near(target spatial.State, radius float64) []int {
	var out []int
	for i, n := range t.nodes {
		if n.state.Distance(target) < radius {
			out = append(out, i)
		}
	}
	return out
}

// path walks parent links from node i back to the root and returns the
// resulting states in root-to-i order.
func (t *tree) path(i int) []spatial.State {
	var rev []spatial.State
	for i != rootParent {
		rev = append(rev, t.nodes[i].state)
		i = t.nodes[i].parent
	}
	path := make([]spatial.State, len(rev))
	for k, s := range rev {
		path[len(rev)-1-k] = s
	}
	return path
}
