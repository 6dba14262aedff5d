package mcts

import "slices"

// How the tactical shortcut looks for the opponent's winning move
type BlockPolicy int

const (
	// Swap the mover on a clone and look for a decisive move from there,
	// a move found this way is the cell the opponent must not get
	BlockOpponent BlockPolicy = iota

	// Re-run the decisive check on the unmodified position. Matches the bot's
	// old behavior, where the block branch duplicated the win check and never fired
	BlockLegacy

	// Only look for our own winning move
	BlockNone
)

func (p BlockPolicy) String() string {
	switch p {
	case BlockOpponent:
		return "opponent"
	case BlockLegacy:
		return "legacy"
	case BlockNone:
		return "none"
	}
	return "unknown"
}

// Return the first action (in Actions() order) that ends the game with a non-drawn
// outcome, for whoever is to move in 'state'. Only clones are mutated
func FindDecisiveAction[T MoveLike](state GameState[T]) (T, bool) {
	for _, action := range state.Actions() {
		next := state.Clone()
		next.Apply(action)
		if decided(next.Rewards()) {
			return action, true
		}
	}

	var none T
	return none, false
}

// One-ply lookahead run before the search: play a winning move if there is one,
// otherwise take the cell where the opponent would win next (see BlockPolicy)
func FindWinningOrBlockingAction[T MoveLike](state GameState[T], policy BlockPolicy) (T, bool) {
	if action, ok := FindDecisiveAction(state); ok {
		return action, true
	}

	var none T
	switch policy {
	case BlockOpponent:
		opponent := state.Clone()
		swapper, ok := opponent.(PlayerSwapper)
		if !ok {
			return none, false
		}
		swapper.SwapPlayer()

		action, ok := FindDecisiveAction(opponent)
		// The swapped view may allow moves the real mover can't make
		if ok && slices.Contains(state.Actions(), action) {
			return action, true
		}
	case BlockLegacy:
		return FindDecisiveAction(state)
	}

	return none, false
}
