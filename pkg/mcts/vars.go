package mcts

import (
	"math"
	"time"
)

// Exploration parameter used in UCB1 formula, higher values increase exploration
// while lower values increase exploitation. Default is the theoretical sqrt(2)
var ExplorationParam float64 = math.Sqrt2

// Set the exploration parameter used in UCB1 formula
func SetExplorationParam(c float64) {
	ExplorationParam = max(0.0, c)
}

// Fraction of the movetime actually spent searching, the rest is left
// for picking the move and returning it to the caller
const DefaultMargin float64 = 0.9

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for random number generators in MCTS,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
