package mcts

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Outcome of a single ChooseAction call
type SearchResult[T MoveLike] struct {
	Move       T
	Eval       float64 // average reward of the chosen move, from the mover's perspective
	Cycles     int
	Size       int
	Elapsed    time.Duration
	StopReason StopReason
	Decisive   bool // found by the tactical shortcut, no search was run
}

func (r SearchResult[T]) String() string {
	return fmt.Sprintf("move=%v eval=%.3f cycles=%d size=%d time=%s stop=%s decisive=%v",
		r.Move, r.Eval, r.Cycles, r.Size, r.Elapsed.Round(time.Millisecond), r.StopReason, r.Decisive)
}

// Time-boxed MCTS engine. A fresh tree is built for every decision and dropped
// once the move is chosen. An engine must not be used by multiple goroutines at once
type Engine[T MoveLike] struct {
	listener        *StatsListener[T]
	Limiter         LimiterLike
	selectionPolicy SelectionPolicy[T]
	blockPolicy     BlockPolicy
	rand            *rand.Rand
	logger          zerolog.Logger
	ctx             context.Context

	// valid only during a search
	tree       *Tree[T]
	rootPlayer int
	cycles     uint32
	cps        uint32

	last SearchResult[T]
}

// Create a new engine with given limits, nil means DefaultLimits
// (which must be given a movetime or cycles before searching)
func NewEngine[T MoveLike](limits *Limits) *Engine[T] {
	if limits == nil {
		limits = DefaultLimits()
	}

	engine := &Engine[T]{
		listener:        &StatsListener[T]{nCycles: 1},
		Limiter:         NewLimiter(),
		selectionPolicy: NewUCB1[T](ExplorationParam).Policy(),
		blockPolicy:     BlockOpponent,
		rand:            rand.New(rand.NewSource(uint64(SeedGeneratorFn()))),
		logger:          zerolog.Nop(),
		ctx:             context.Background(),
	}
	engine.Limiter.SetLimits(limits)
	return engine
}

func (e *Engine[T]) SetLimits(limits *Limits) {
	e.Limiter.SetLimits(limits)
}

func (e *Engine[T]) Limits() *Limits {
	return e.Limiter.Limits()
}

// Random source used for expansion and rollouts
func (e *Engine[T]) SetRand(r *rand.Rand) {
	if r != nil {
		e.rand = r
	}
}

// Re-seed the engine's random source
func (e *Engine[T]) Seed(seed uint64) {
	e.rand = rand.New(rand.NewSource(seed))
}

func (e *Engine[T]) SetLogger(logger zerolog.Logger) {
	e.logger = logger
}

func (e *Engine[T]) SetListener(listener StatsListener[T]) {
	*e.listener = listener
}

func (e *Engine[T]) ResetListener() {
	e.listener.OnCycle(nil).OnStop(nil)
}

func (e *Engine[T]) SetBlockPolicy(policy BlockPolicy) {
	e.blockPolicy = policy
}

func (e *Engine[T]) BlockPolicy() BlockPolicy {
	return e.blockPolicy
}

func (e *Engine[T]) SetSelectionPolicy(policy SelectionPolicy[T]) {
	if policy != nil {
		e.selectionPolicy = policy
	}
}

// Context checked between iterations by ChooseAction
func (e *Engine[T]) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	e.ctx = ctx
}

// Result of the last decision
func (e *Engine[T]) LastResult() SearchResult[T] {
	return e.last
}

// Total number of iterations ran during the last search
func (e *Engine[T]) Cycles() int {
	return int(e.cycles)
}

// Get cycles per second statistic of the last search
func (e *Engine[T]) Cps() uint32 {
	return e.cps
}

func (e *Engine[T]) StopReason() StopReason {
	return e.Limiter.StopReason()
}

// Pick a move for the player to move in 'state', within the engine's limits
func (e *Engine[T]) ChooseAction(state GameState[T]) (T, error) {
	return e.Search(e.ctx, state)
}

// Pick a move within 'seconds' of wall-clock time, the engine's other limits
// are left untouched. A non-positive budget still runs one iteration
func (e *Engine[T]) ChooseActionWithin(state GameState[T], seconds float64) (T, error) {
	saved := e.Limiter.Limits()
	limits := *saved
	e.Limiter.SetLimits(limits.SetSeconds(max(0, seconds)))
	defer e.Limiter.SetLimits(saved)

	return e.Search(e.ctx, state)
}

func (e *Engine[T]) String() string {
	return fmt.Sprintf("Engine={Limits=%s, Block=%s, Last={%s}}",
		e.Limiter.Limits(), e.blockPolicy, e.last)
}
