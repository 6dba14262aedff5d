package bench

import (
	"context"
	"fmt"
	"slices"

	"github.com/IlikeChooros/ox-mcts/pkg/mcts"
)

// Play one game from 'position' until it ends, agents[i] moves for player i.
// 'position' is left untouched, the game runs on a clone. The number of turns is
// bounded by the number of legal moves in the starting position
func PlayGame[T mcts.MoveLike](
	ctx context.Context,
	position mcts.GameState[T],
	agents [2]Agent[T],
	listener ListenerLike[T],
) (GameRecord[T], error) {
	if listener == nil {
		listener = DefaultListener[T]{}
	}

	game := position.Clone()
	maxTurns := len(game.Actions())
	record := GameRecord[T]{
		FirstPlayer: game.CurrentPlayer(),
		Moves:       make([]T, 0, maxTurns),
	}

	for !game.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return record, err
		}
		if len(record.Moves) >= maxTurns {
			return record, fmt.Errorf("%w: %d turns", ErrTurnLimit, maxTurns)
		}

		player := game.CurrentPlayer()
		move, err := agents[player].ChooseAction(game)
		if err != nil {
			return record, fmt.Errorf("player %d: %w", player, err)
		}
		if !slices.Contains(game.Actions(), move) {
			return record, fmt.Errorf("%w: player %d played %v", ErrIllegalMove, player, move)
		}

		game.Apply(move)
		record.Moves = append(record.Moves, move)
		listener.OnMoveMade(MoveInfo[T]{
			Player: player,
			Move:   move,
			Turn:   len(record.Moves),
			State:  game,
		})
	}

	record.Rewards = game.Rewards()
	record.Final = game
	return record, nil
}
