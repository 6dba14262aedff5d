package mcts

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"
)

// Resets the counters and the limiter, doesn't actually start the search
func (e *Engine[T]) setupSearch(ctx context.Context) {
	e.Limiter.SetContext(ctx)
	e.Limiter.Reset()
	e.tree = nil
	e.cycles = 0
	e.cps = 0
	e.last = SearchResult[T]{}
}

// Choose a move for the player to move in 'state':
//
// 1. tactical shortcut - play a winning move, or block the opponent's one
//
// 2. selection - walk the tree with the selection policy down to a leaf
//
// 3. expansion - a visited, non-terminal leaf gets all of its children, descend to a random one
//
// 4. rollout - random playout to the end of the game, on a clone
//
// 5. backpropagate - add the root mover's reward up to the root
//
// Steps 2-5 repeat until the limiter says stop, checked only after an iteration
// completes, so at least one always runs. 'state' is never modified
func (e *Engine[T]) Search(ctx context.Context, state GameState[T]) (T, error) {
	var none T
	if err := e.Limiter.Limits().Validate(); err != nil {
		return none, err
	}
	if state.IsTerminal() {
		return none, ErrTerminalState
	}
	if len(state.Actions()) == 0 {
		return none, ErrNoLegalActions
	}

	e.setupSearch(ctx)

	if move, ok := FindWinningOrBlockingAction(state, e.blockPolicy); ok {
		e.Limiter.SetStopReason(StopDecisive)
		e.last = SearchResult[T]{
			Move:       move,
			Elapsed:    e.Limiter.Elapsed(),
			StopReason: StopDecisive,
			Decisive:   true,
		}
		e.logger.Debug().
			Str("move", fmt.Sprint(move)).
			Str("block", e.blockPolicy.String()).
			Msg("decisive move found, skipping search")
		e.listener.invokeStop(e)
		return move, nil
	}

	e.tree = NewTree(state)
	e.rootPlayer = state.CurrentPlayer()
	e.tree.Expand(e.tree.Root())

	for {
		// Choose the most promising node
		node := e.Selection()
		// Get the result of the playout and store it up to the root
		e.tree.Backpropagate(node, Rollout(e.tree.Node(node).State, e.rand, e.rootPlayer))

		// Increment cycle count and store the cps
		e.cycles++
		e.cps = uint32(int64(e.cycles) * 1000 / max(e.Limiter.Elapsed().Milliseconds(), 1))
		e.listener.invokeCycle(e)

		if !e.Limiter.Ok(e.cycles) {
			break
		}
	}
	e.Limiter.EvaluateStopReason(e.cycles)

	best, ok := e.tree.BestChild()
	if !ok {
		// The root was expanded before the loop and has at least one action
		panic("[MCTS] Search: root has no children after the search")
	}

	bestNode := e.tree.Node(best)
	e.last = SearchResult[T]{
		Move:       bestNode.Move,
		Eval:       float64(bestNode.AvgQ()),
		Cycles:     int(e.cycles),
		Size:       e.tree.Size(),
		Elapsed:    e.Limiter.Elapsed(),
		StopReason: e.Limiter.StopReason(),
	}

	e.logger.Debug().
		Str("move", fmt.Sprint(bestNode.Move)).
		Float64("eval", e.last.Eval).
		Int("cycles", e.last.Cycles).
		Uint32("cps", e.cps).
		Int("size", e.last.Size).
		Dur("elapsed", e.last.Elapsed).
		Str("stop", e.last.StopReason.String()).
		Msg("search finished")

	e.listener.invokeStop(e)

	// Drop the tree, nothing is reused for the next move
	e.tree = nil
	return bestNode.Move, nil
}

// Walk from the root to a leaf with the selection policy, then expand the leaf
// if it was visited before and isn't terminal, descending to a random new child
func (e *Engine[T]) Selection() int32 {
	tree := e.tree
	node := tree.Root()
	for tree.Node(node).Expanded() {
		node = e.selectionPolicy(tree, node)
	}

	if leaf := tree.Node(node); leaf.N() > 0 && !leaf.Terminal() {
		if children := tree.Expand(node); len(children) > 0 {
			node = children[e.rand.Intn(len(children))]
		}
	}

	return node
}

// Play uniformly random moves on a clone of 'state' until the game ends,
// return the reward of 'player'
func Rollout[T MoveLike](state GameState[T], r *rand.Rand, player int) Result {
	sim := state.Clone()
	for !sim.IsTerminal() {
		actions := sim.Actions()
		if len(actions) == 0 {
			panic("[MCTS] Rollout: non-terminal state without legal actions")
		}
		sim.Apply(actions[r.Intn(len(actions))])
	}
	return Result(sim.Rewards()[player])
}
