package bench

import (
	"fmt"

	"github.com/IlikeChooros/ox-mcts/pkg/mcts"
	"github.com/rs/zerolog"
)

// A single move played in a game
type MoveInfo[T mcts.MoveLike] struct {
	Player int
	Move   T
	Turn   int
	State  mcts.GameState[T] // position after the move, must not be modified
}

type ListenerLike[T mcts.MoveLike] interface {
	OnMoveMade(info MoveInfo[T])
	OnFinishedGame(info VersusWorkerInfo[T])
}

// Does nothing
type DefaultListener[T mcts.MoveLike] struct{}

func (d DefaultListener[T]) OnMoveMade(info MoveInfo[T]) {}

func (d DefaultListener[T]) OnFinishedGame(info VersusWorkerInfo[T]) {}

// Writes every move and game result to a zerolog logger
type LogListener[T mcts.MoveLike] struct {
	Logger zerolog.Logger
}

func (l LogListener[T]) OnMoveMade(info MoveInfo[T]) {
	l.Logger.Debug().
		Int("player", info.Player).
		Str("move", fmt.Sprint(info.Move)).
		Int("turn", info.Turn).
		Msg("move made")
}

func (l LogListener[T]) OnFinishedGame(info VersusWorkerInfo[T]) {
	l.Logger.Info().
		Int("worker", info.WorkerID).
		Int("finished", info.FinishedGames).
		Int("games", info.NGames).
		Int("moves", len(info.Moves)).
		Int("result", int(info.Result)).
		Msg("game finished")
}
