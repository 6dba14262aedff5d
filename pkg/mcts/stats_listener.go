package mcts

type ListenerTreeStats[T MoveLike] struct {
	Cycles     int
	TimeMs     int
	Cps        uint32
	Size       int
	BestMove   T
	Eval       float64
	StopReason StopReason
}

// Convert engine state to 'ListenerTreeStats' struct
func toListenerStats[T MoveLike](engine *Engine[T]) ListenerTreeStats[T] {
	stats := ListenerTreeStats[T]{
		Cycles:     int(engine.cycles),
		TimeMs:     int(engine.Limiter.Elapsed().Milliseconds()),
		Cps:        engine.cps,
		StopReason: engine.Limiter.StopReason(),
	}

	if engine.tree == nil {
		// Tactical shortcut answered, there is no tree
		stats.BestMove = engine.last.Move
		return stats
	}

	stats.Size = engine.tree.Size()
	if best, ok := engine.tree.BestChild(); ok {
		node := engine.tree.Node(best)
		stats.BestMove = node.Move
		stats.Eval = float64(node.AvgQ())
	}
	return stats
}

// Listener function callback, will recieve current tree statistics, like
// number of iterations so far and the current best move
type ListenerFunc[T MoveLike] func(ListenerTreeStats[T])

type StatsListener[T MoveLike] struct {
	// called every N full iterations
	onCycle ListenerFunc[T]
	nCycles int // call 'onCycle' every N cycles

	// called when the search stops (either by limiter or the tactical shortcut)
	onStop ListenerFunc[T]
}

func NewStatsListener[T MoveLike]() StatsListener[T] {
	return StatsListener[T]{nCycles: 1}
}

// Attach new on iteration increase callback, this will slow down the search,
// so use it with a large enough SetCycleInterval
func (listener *StatsListener[T]) OnCycle(onCycle ListenerFunc[T]) *StatsListener[T] {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener[T]) invokeCycle(engine *Engine[T]) {
	if listener.onCycle != nil && int(engine.cycles)%max(1, listener.nCycles) == 0 {
		listener.onCycle(toListenerStats(engine))
	}
}

func (listener *StatsListener[T]) invokeStop(engine *Engine[T]) {
	if listener.onStop != nil {
		listener.onStop(toListenerStats(engine))
	}
}

func (listener *StatsListener[T]) SetCycleInterval(n int) *StatsListener[T] {
	if n < 1 {
		n = 1
	}
	listener.nCycles = n
	return listener
}

// Attach 'on search end' callback, called once per search,
// makes 'StopReason' available in the stats
func (listener *StatsListener[T]) OnStop(onStop ListenerFunc[T]) *StatsListener[T] {
	listener.onStop = onStop
	return listener
}
