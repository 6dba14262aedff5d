package mcts

// Capability contract the engine needs from a game position. The engine never
// mutates a position it was given, every Apply happens on a Clone.
type GameState[T MoveLike] interface {
	// Independent deep copy, mutating it must never affect the original
	Clone() GameState[T]
	// Legal moves in this exact position, empty iff none remain.
	// The order must be stable, it decides tie-breaks
	Actions() []T
	// Play a legal move, behaviour on an illegal move is undefined
	Apply(T)
	// Whether the game has ended (win, loss or draw)
	IsTerminal() bool
	// Reward per player, all zero on a draw or while the game is still running
	Rewards() []float64
	// Index into Rewards() of the player to move
	CurrentPlayer() int
}

// Optional capability, lets the tactical shortcut look at the position
// from the opponent's side to find a move that has to be blocked
type PlayerSwapper interface {
	SwapPlayer()
}

// Whether the reward vector marks a decided (non-drawn) game
func decided(rewards []float64) bool {
	for _, r := range rewards {
		if r != 0 {
			return true
		}
	}
	return false
}
