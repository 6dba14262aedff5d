package mcts_test

import (
	"testing"
	"time"

	"github.com/IlikeChooros/ox-mcts/pkg/mcts"
	"github.com/IlikeChooros/ox-mcts/pkg/ox"
	"github.com/stretchr/testify/require"
)

func newEngine(limits *mcts.Limits) *mcts.Engine[int] {
	engine := mcts.NewEngine[int](limits)
	engine.Seed(42)
	return engine
}

func TestEngineTakesTheWin(t *testing.T) {
	b := board(t, "xx1/oo1/3 x", 3)
	engine := newEngine(mcts.DefaultLimits().SetCycles(1000))

	move, err := engine.ChooseAction(b)
	require.NoError(t, err)
	require.Equal(t, 2, move)
	require.True(t, engine.LastResult().Decisive)
	require.Equal(t, mcts.StopDecisive, engine.StopReason())
}

func TestEngineBlocks(t *testing.T) {
	b := board(t, "oo1/x2/2x x", 3)

	engine := newEngine(mcts.DefaultLimits().SetCycles(1000))
	move, err := engine.ChooseAction(b)
	require.NoError(t, err)
	require.Equal(t, 2, move)
	require.True(t, engine.LastResult().Decisive)

	// Without the block the search decides, still from the root's actions
	engine.SetBlockPolicy(mcts.BlockLegacy)
	move, err = engine.ChooseAction(b)
	require.NoError(t, err)
	require.Contains(t, b.Actions(), move)
	require.False(t, engine.LastResult().Decisive)
	require.Equal(t, 1000, engine.Cycles())
}

func TestEngineReturnsRootAction(t *testing.T) {
	notations := []string{
		"8/8/8/8/8/8/8/8 x",
		"8/8/8/3xo3/3ox3/8/8/8 x",
		"8/8/2x5/3xo3/3oo3/8/8/8 x",
	}

	for _, notation := range notations {
		t.Run(notation, func(t *testing.T) {
			b := board(t, notation, 5)
			before := b.Copy()

			engine := newEngine(mcts.DefaultLimits().SetMovetime(20 * time.Millisecond))
			move, err := engine.ChooseAction(b)
			require.NoError(t, err)
			require.Contains(t, b.Actions(), move)
			require.True(t, before.Equal(b), "search must not modify the given board")

			result := engine.LastResult()
			require.GreaterOrEqual(t, result.Cycles, 1)
			require.Greater(t, result.Size, len(b.Actions()))
			require.GreaterOrEqual(t, result.Eval, -1.0)
			require.LessOrEqual(t, result.Eval, 1.0)
		})
	}
}

func TestEngineTinyBudgetOnLargeBoard(t *testing.T) {
	b := ox.NewBoard(8, 5)
	engine := newEngine(mcts.DefaultLimits().SetMovetime(time.Nanosecond))

	move, err := engine.ChooseAction(b)
	require.NoError(t, err)
	require.Contains(t, b.Actions(), move)
	require.GreaterOrEqual(t, engine.Cycles(), 1)
}

func TestEngineChooseActionWithin(t *testing.T) {
	b := ox.NewBoard(8, 5)
	engine := newEngine(nil)

	start := time.Now()
	move, err := engine.ChooseActionWithin(b, 0.05)
	require.NoError(t, err)
	require.Contains(t, b.Actions(), move)
	require.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
	require.Equal(t, mcts.StopMovetime, engine.StopReason())

	// Back to the engine's own (unset) limits
	_, err = engine.ChooseAction(b)
	require.ErrorIs(t, err, mcts.ErrNoLimits)
}

func TestEngineErrors(t *testing.T) {
	engine := newEngine(mcts.DefaultLimits().SetCycles(10))

	_, err := engine.ChooseAction(board(t, "xxx/oo1/3 o", 3))
	require.ErrorIs(t, err, mcts.ErrTerminalState)

	_, err = engine.ChooseAction(board(t, "xox/xoo/oxx o", 3))
	require.ErrorIs(t, err, mcts.ErrTerminalState)
}
