package mcts

import "fmt"

// Parent index of the root node
const noParent int32 = -1

// Node of the search tree. Nodes live in the Tree's arena and refer to
// each other by index, the parent link is only used for backpropagation
type Node[T MoveLike] struct {
	NodeStats
	State    GameState[T]
	Move     T
	Parent   int32
	Children []int32
	terminal bool
}

// Whether the node's position has ended the game
func (node *Node[T]) Terminal() bool {
	return node.terminal
}

// Same as asking if the node has children
func (node *Node[T]) Expanded() bool {
	return len(node.Children) > 0
}

// Arena of nodes built for a single decision, index 0 is always the root
type Tree[T MoveLike] struct {
	nodes []Node[T]
}

// Create a tree with a single root node, owning a clone of 'state'
func NewTree[T MoveLike](state GameState[T]) *Tree[T] {
	tree := &Tree[T]{nodes: make([]Node[T], 0, 64)}
	tree.add(noParent, *new(T), state.Clone())
	return tree
}

func (tree *Tree[T]) add(parent int32, move T, state GameState[T]) int32 {
	tree.nodes = append(tree.nodes, Node[T]{
		State:    state,
		Move:     move,
		Parent:   parent,
		terminal: state.IsTerminal(),
	})
	return int32(len(tree.nodes) - 1)
}

// Index of the root node
func (tree *Tree[T]) Root() int32 {
	return 0
}

// Pointer to the node at index 'i', only valid until the next Expand call,
// since expanding may grow the arena
func (tree *Tree[T]) Node(i int32) *Node[T] {
	return &tree.nodes[i]
}

// Number of nodes in the tree
func (tree *Tree[T]) Size() int {
	return len(tree.nodes)
}

// Generate one child per legal action of node 'i', in the order of Actions(),
// each owning the post-action clone. Does nothing on a terminal or already
// expanded node. Returns the children indices
func (tree *Tree[T]) Expand(i int32) []int32 {
	node := tree.Node(i)
	if node.terminal || node.Expanded() {
		return node.Children
	}

	state := node.State
	actions := state.Actions()
	children := make([]int32, 0, len(actions))
	for _, action := range actions {
		next := state.Clone()
		next.Apply(action)
		children = append(children, tree.add(i, action, next))
	}

	// Appending could've moved the arena, so look the node up again
	tree.Node(i).Children = children
	return children
}

// Add 'result' to node 'i' and every ancestor up to and including the root,
// each of them gets exactly one visit
func (tree *Tree[T]) Backpropagate(i int32, result Result) {
	for i != noParent {
		node := &tree.nodes[i]
		node.AddOutcome(result)
		i = node.Parent
	}
}

// Return the root's child with the strictly highest average score,
// first one in enumeration order wins ties, unvisited children count as 0
func (tree *Tree[T]) BestChild() (int32, bool) {
	root := tree.Node(tree.Root())
	best := noParent
	bestAvg := Result(0)

	for _, ch := range root.Children {
		avg := tree.nodes[ch].AvgQ()
		if best == noParent || avg > bestAvg {
			best = ch
			bestAvg = avg
		}
	}
	return best, best != noParent
}

// Path from the root down to node 'i', root first
func (tree *Tree[T]) Path(i int32) []int32 {
	depth := 0
	for n := i; n != noParent; n = tree.nodes[n].Parent {
		depth++
	}

	path := make([]int32, depth)
	for n := i; n != noParent; n = tree.nodes[n].Parent {
		depth--
		path[depth] = n
	}
	return path
}

func (tree *Tree[T]) String() string {
	root := tree.Node(tree.Root())
	return fmt.Sprintf("Tree={Size=%d, Root={N=%d, Q=%.3f, Children=%d}}",
		tree.Size(), root.N(), root.Q(), len(root.Children))
}
