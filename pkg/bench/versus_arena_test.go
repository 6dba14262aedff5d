package bench

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/IlikeChooros/ox-mcts/pkg/mcts"
	"github.com/IlikeChooros/ox-mcts/pkg/ox"
	"github.com/stretchr/testify/require"
)

// Always plays the first legal action
type firstLegal struct{}

func (firstLegal) ChooseAction(state mcts.GameState[int]) (int, error) {
	return state.Actions()[0], nil
}

// Plays a move that is never legal
type cheater struct{}

func (cheater) ChooseAction(state mcts.GameState[int]) (int, error) {
	return -1, nil
}

var errResigned = errors.New("resigned")

type resigning struct{}

func (resigning) ChooseAction(state mcts.GameState[int]) (int, error) {
	return 0, errResigned
}

// A game that never ends, with a single action that does nothing
type endless struct{ player int }

func (e *endless) Clone() mcts.GameState[int] { c := *e; return &c }
func (e *endless) Actions() []int            { return []int{0} }
func (e *endless) Apply(int)                 { e.player ^= 1 }
func (e *endless) IsTerminal() bool          { return false }
func (e *endless) Rewards() []float64        { return []float64{0, 0} }
func (e *endless) CurrentPlayer() int        { return e.player }

type countingListener struct {
	moves    atomic.Int32
	finished atomic.Int32
}

func (l *countingListener) OnMoveMade(info MoveInfo[int]) {
	l.moves.Add(1)
}

func (l *countingListener) OnFinishedGame(info VersusWorkerInfo[int]) {
	l.finished.Add(1)
}

func TestMain(m *testing.M) {
	mcts.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", mcts.SeedGeneratorFn())

	os.Exit(m.Run())
}

func engineAgent(limits *mcts.Limits) Agent[int] {
	return mcts.NewEngine[int](limits)
}

func requireValidRewards(t *testing.T, rewards []float64) {
	t.Helper()
	require.Contains(t, [][]float64{{1, -1}, {-1, 1}, {0, 0}}, rewards)
}

func TestPlayGameScripted(t *testing.T) {
	board := ox.NewBoard(3, 3)
	listener := &countingListener{}

	record, err := PlayGame[int](context.Background(), board, [2]Agent[int]{firstLegal{}, firstLegal{}}, listener)
	require.NoError(t, err)

	// x: 0 2 4 6 completes the anti diagonal
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, record.Moves)
	require.Equal(t, []float64{1, -1}, record.Rewards)
	require.Equal(t, 0, record.Winner())
	require.Equal(t, 0, record.FirstPlayer)
	require.True(t, record.Final.IsTerminal())
	require.Equal(t, int32(7), listener.moves.Load())

	require.Equal(t, "3/3/3 x", board.Notation(), "the starting position is left untouched")
}

func TestPlayGameErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("illegal move", func(t *testing.T) {
		record, err := PlayGame[int](ctx, ox.NewBoard(3, 3), [2]Agent[int]{firstLegal{}, cheater{}}, nil)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, []int{0}, record.Moves)
	})

	t.Run("agent error", func(t *testing.T) {
		_, err := PlayGame[int](ctx, ox.NewBoard(3, 3), [2]Agent[int]{resigning{}, firstLegal{}}, nil)
		require.ErrorIs(t, err, errResigned)
	})

	t.Run("turn limit", func(t *testing.T) {
		record, err := PlayGame[int](ctx, &endless{}, [2]Agent[int]{firstLegal{}, firstLegal{}}, nil)
		require.ErrorIs(t, err, ErrTurnLimit)
		require.Len(t, record.Moves, 1)
	})

	t.Run("cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := PlayGame[int](cancelled, ox.NewBoard(3, 3), [2]Agent[int]{firstLegal{}, firstLegal{}}, nil)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("engine on a finished game", func(t *testing.T) {
		board, err := ox.FromNotation("xxx/oo1/3 o", 3)
		require.NoError(t, err)
		record, err := PlayGame[int](ctx, board, [2]Agent[int]{firstLegal{}, firstLegal{}}, nil)
		require.NoError(t, err)
		require.Empty(t, record.Moves)
		require.Equal(t, []float64{1, -1}, record.Rewards)
	})
}

func TestPlayGameEngines(t *testing.T) {
	board := ox.NewBoard(3, 3)
	agents := [2]Agent[int]{
		engineAgent(mcts.DefaultLimits().SetSeconds(0.01)),
		engineAgent(mcts.DefaultLimits().SetSeconds(0.1)),
	}

	start := time.Now()
	record, err := PlayGame[int](context.Background(), board, agents, nil)
	require.NoError(t, err)
	require.LessOrEqual(t, len(record.Moves), 9)
	require.GreaterOrEqual(t, len(record.Moves), 5)
	requireValidRewards(t, record.Rewards)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestPlayGameEnginesLargeBoard(t *testing.T) {
	if testing.Short() {
		t.Skip("full 8x8 game")
	}

	board := ox.NewBoard(8, 5)
	agents := [2]Agent[int]{
		engineAgent(mcts.DefaultLimits().SetCycles(100)),
		engineAgent(mcts.DefaultLimits().SetCycles(400)),
	}

	record, err := PlayGame[int](context.Background(), board, agents, nil)
	require.NoError(t, err)
	require.LessOrEqual(t, len(record.Moves), 64)
	requireValidRewards(t, record.Rewards)

	// Replaying the moves must reach the same final position
	replay := ox.NewBoard(8, 5)
	for _, m := range record.Moves {
		replay.Apply(m)
	}
	require.True(t, replay.Equal(record.Final.(*ox.Board)))
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name        string
		record      GameRecord[int]
		p1WentFirst bool
		want        VersusMatchResult
	}{
		{"draw", GameRecord[int]{FirstPlayer: 0, Rewards: []float64{0, 0}}, true, VersusDraw},
		{"first wins, p1 first", GameRecord[int]{FirstPlayer: 0, Rewards: []float64{1, -1}}, true, VersusPl1Win},
		{"first wins, p2 first", GameRecord[int]{FirstPlayer: 0, Rewards: []float64{1, -1}}, false, VersusPl2Win},
		{"second wins, p1 first", GameRecord[int]{FirstPlayer: 0, Rewards: []float64{-1, 1}}, true, VersusPl2Win},
		{"first player is 1", GameRecord[int]{FirstPlayer: 1, Rewards: []float64{-1, 1}}, true, VersusPl1Win},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, toAgentResult(computeOutcome(tt.record), tt.p1WentFirst))
		})
	}
}

func TestVersusArenaScripted(t *testing.T) {
	factory := func() Agent[int] { return firstLegal{} }
	listener := &countingListener{}

	arena := NewVersusArena[int](ox.NewBoard(3, 3), factory, factory)
	arena.Listener = listener
	arena.Setup(7, 3)

	summary, err := arena.Run()
	require.NoError(t, err)
	require.Equal(t, 7, summary.TotalGames)
	require.Equal(t, 7, summary.P1Wins+summary.P2Wins)
	require.Equal(t, 7, summary.FirstToMoveWins, "first legal move always wins for x")
	require.Zero(t, summary.SecondToMoveWins)
	require.Zero(t, summary.Draws)
	require.Equal(t, 3, summary.Workers)
	require.Equal(t, int32(7), listener.finished.Load())
	require.Equal(t, int32(7*7), listener.moves.Load())
}

func TestVersusArenaEngines(t *testing.T) {
	weak := func() Agent[int] { return engineAgent(mcts.DefaultLimits().SetCycles(20)) }
	strong := func() Agent[int] { return engineAgent(mcts.DefaultLimits().SetCycles(200)) }

	arena := NewVersusArena[int](ox.NewBoard(3, 3), weak, strong)
	arena.P1Name, arena.P2Name = "weak", "strong"
	arena.Setup(6, 2)

	summary, err := arena.Run()
	require.NoError(t, err)
	require.Equal(t, 6, summary.TotalGames)
	require.Equal(t, 6, summary.P1Wins+summary.P2Wins+summary.Draws)
	require.Equal(t, summary.P1Wins+summary.P2Wins, summary.FirstToMoveWins+summary.SecondToMoveWins)
	require.Equal(t, "strong", summary.P2Name)
}

func TestVersusArenaFailure(t *testing.T) {
	good := func() Agent[int] { return firstLegal{} }
	bad := func() Agent[int] { return cheater{} }

	arena := NewVersusArena[int](ox.NewBoard(3, 3), good, bad)
	arena.Setup(4, 2)

	_, err := arena.Run()
	require.ErrorIs(t, err, ErrIllegalMove)
	require.Less(t, arena.Total(), 4)
}
