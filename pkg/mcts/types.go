package mcts

import "errors"

// Other types, which didn't fit to MCTS or Node files

// Reward of the rollout from the root mover's perspective, taken straight
// from the terminal state's reward vector
type Result float64
type MoveLike comparable

// Picks the child of 'parent' to descend into, must be called only on a node with children
type SelectionPolicy[T MoveLike] func(tree *Tree[T], parent int32) int32
type SeedGeneratorFnType func() int64

var (
	// Returned when the engine is asked to move in a position without legal actions
	ErrNoLegalActions = errors.New("mcts: no legal actions in the root position")
	// Returned when the engine is asked to move in an already finished game
	ErrTerminalState = errors.New("mcts: root position is terminal")
	// Limits have neither a movetime nor a cycle cap, the search would never end
	ErrNoLimits = errors.New("mcts: limits must set a movetime or a cycle count")
)
