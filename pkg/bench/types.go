package bench

import (
	"errors"
	"sync/atomic"

	"github.com/IlikeChooros/ox-mcts/pkg/mcts"
)

var (
	// The game didn't end within the number of legal moves of the starting position
	ErrTurnLimit = errors.New("bench: game exceeded its turn limit")
	// An agent returned a move that isn't legal in the current position
	ErrIllegalMove = errors.New("bench: agent returned an illegal move")
)

// Anything that can pick a move, *mcts.Engine satisfies it
type Agent[T mcts.MoveLike] interface {
	ChooseAction(mcts.GameState[T]) (T, error)
}

// Creates a fresh agent, each arena worker gets its own
type AgentFactory[T mcts.MoveLike] func() Agent[T]

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return int(vas.P1Wins() + vas.P2Wins() + vas.Draws())
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

func (vas *VersusArenaStats) add(result VersusMatchResult, outcome GameOutcome) {
	switch result {
	case VersusDraw:
		atomic.AddUint32(&vas.draws, 1)
		return
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	}

	if outcome.FirstPlayerWon {
		atomic.AddUint32(&vas.firstToMoveWins, 1)
	} else {
		atomic.AddUint32(&vas.secondToMoveWins, 1)
	}
}

type VersusWorkerInfo[T mcts.MoveLike] struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	Moves         []T
	Result        VersusMatchResult
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

// Moves and final rewards of a finished game
type GameRecord[T mcts.MoveLike] struct {
	FirstPlayer int
	Moves       []T
	Rewards     []float64
	Final       mcts.GameState[T]
}

// Index of the player with a positive reward, -1 on a draw
func (r GameRecord[T]) Winner() int {
	for i, reward := range r.Rewards {
		if reward > 0 {
			return i
		}
	}
	return -1
}

// represents result from the first-player's perspective in a single game
type GameOutcome struct {
	FirstPlayerWon bool
	IsDraw         bool
}

// determines the winner based on the final rewards
func computeOutcome[T mcts.MoveLike](record GameRecord[T]) GameOutcome {
	winner := record.Winner()
	if winner == -1 {
		return GameOutcome{IsDraw: true}
	}
	return GameOutcome{FirstPlayerWon: winner == record.FirstPlayer}
}

// maps a game outcome to which agent won, given player assignments
func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	if outcome.IsDraw {
		return VersusDraw
	}

	if p1WentFirst == outcome.FirstPlayerWon {
		return VersusPl1Win
	}
	return VersusPl2Win
}
