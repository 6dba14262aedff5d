package bench

import (
	"context"

	"github.com/IlikeChooros/ox-mcts/pkg/mcts"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, allows to play a series of games between two
different agent configurations.
*/

type VersusArena[T mcts.MoveLike] struct {
	VersusArenaStats
	Player1  AgentFactory[T]
	Player2  AgentFactory[T]
	P1Name   string
	P2Name   string
	NGames   uint
	NThreads uint
	Position mcts.GameState[T]
	Listener ListenerLike[T]
	Logger   zerolog.Logger
	ctx      context.Context
}

func NewVersusArena[T mcts.MoveLike](position mcts.GameState[T], p1, p2 AgentFactory[T]) *VersusArena[T] {
	return &VersusArena[T]{
		Player1:  p1,
		Player2:  p2,
		P1Name:   "player1",
		P2Name:   "player2",
		NGames:   100,
		NThreads: 2,
		Position: position,
		Listener: DefaultListener[T]{},
		Logger:   zerolog.Nop(),
		ctx:      context.Background(),
	}
}

func (va *VersusArena[T]) WithContext(ctx context.Context) *VersusArena[T] {
	va.ctx = ctx
	return va
}

func (va *VersusArena[T]) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(1, nThreads)
}

// Play all of the games, equally distributed between the workers,
// blocks until they are done or one of them fails
func (va *VersusArena[T]) Run() (VersusSummaryInfo, error) {
	threads := max(1, va.NThreads)
	nGames := va.NGames / threads
	rest := va.NGames % threads

	g, ctx := errgroup.WithContext(va.ctx)
	for i := range threads {
		n := nGames
		if rest > 0 {
			n++
			rest--
		}
		if n == 0 {
			continue
		}

		id := int(i)
		g.Go(func() error {
			return va.worker(ctx, id, int(n))
		})
	}

	err := g.Wait()
	summary := va.Summary()
	va.Logger.Info().
		Int("games", summary.TotalGames).
		Int("p1_wins", summary.P1Wins).
		Int("p2_wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Str("p1", va.P1Name).
		Str("p2", va.P2Name).
		Msg("arena finished")
	return summary, err
}

func (va *VersusArena[T]) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          int(max(1, va.NThreads)),
		P1Name:           va.P1Name,
		P2Name:           va.P2Name,
	}
}

func (va *VersusArena[T]) worker(ctx context.Context, id, nGames int) error {
	r := rand.New(rand.NewSource(uint64(mcts.SeedGeneratorFn() + int64(id))))
	p1, p2 := va.Player1(), va.Player2()
	first := va.Position.CurrentPlayer()

	for i := range nGames {
		p1First := r.Intn(2) == 0

		var agents [2]Agent[T]
		if p1First {
			agents[first], agents[1-first] = p1, p2
		} else {
			agents[first], agents[1-first] = p2, p1
		}

		record, err := PlayGame(ctx, va.Position, agents, va.Listener)
		if err != nil {
			va.Logger.Error().Err(err).Int("worker", id).Int("game", i).Msg("game aborted")
			return err
		}

		outcome := computeOutcome(record)
		result := toAgentResult(outcome, p1First)
		va.add(result, outcome)

		va.Listener.OnFinishedGame(VersusWorkerInfo[T]{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: i + 1,
			Moves:         record.Moves,
			Result:        result,
		})
	}

	return nil
}
