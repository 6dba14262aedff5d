package mcts

import "math"

type UCB1[T MoveLike] struct {
	ExplorationParam float64
}

func (u *UCB1[T]) SetExplorationParam(c float64) {
	u.ExplorationParam = max(0, c)
}

func NewUCB1[T MoveLike](explorationParam float64) *UCB1[T] {
	return &UCB1[T]{ExplorationParam: explorationParam}
}

// UCB 1 : score/visits + C * sqrt(ln(parent_visits)/visits),
// an unvisited child is worth +Inf
func UCB1Value(score Result, visits, parentVisits int32, c float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return float64(score)/float64(visits) +
		c*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
}

// Pick the child of 'parent' with the highest UCB1 value. Children are scored from
// the root mover's perspective, since every node stores the root mover's reward
func (u *UCB1[T]) Select(tree *Tree[T], parent int32) int32 {
	node := tree.Node(parent)
	if len(node.Children) == 0 {
		panic("[MCTS] UCB1.Select: node has no children")
	}

	maxUcb := math.Inf(-1)
	index := node.Children[0]

	for _, i := range node.Children {
		child := tree.Node(i)

		// Pick the unvisited one
		if child.N() == 0 {
			return i
		}

		// parent.N() >= 1 here: a child was visited, so was its parent
		ucb1 := UCB1Value(child.Q(), child.N(), node.N(), u.ExplorationParam)
		if ucb1 > maxUcb {
			maxUcb = ucb1
			index = i
		}
	}

	return index
}

// Adapter to the SelectionPolicy function type
func (u *UCB1[T]) Policy() SelectionPolicy[T] {
	return u.Select
}
