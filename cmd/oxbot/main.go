package main

/*

Plays k-in-a-row games between two MCTS engines with different time budgets,
printing every move and the board after it.

	oxbot -size 8 -win 5 -t1 0.1 -t2 1.0

With -games > 1 the games are played in an arena and only the summary is printed.

*/

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/IlikeChooros/ox-mcts/internal/logx"
	"github.com/IlikeChooros/ox-mcts/pkg/bench"
	"github.com/IlikeChooros/ox-mcts/pkg/mcts"
	"github.com/IlikeChooros/ox-mcts/pkg/ox"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

func main() {
	var (
		size    = flag.Int("size", 8, "board size")
		win     = flag.Int("win", 5, "marks in a row needed to win")
		t1      = flag.Float64("t1", 0.1, "time budget of the first engine, in seconds")
		t2      = flag.Float64("t2", 1.0, "time budget of the second engine, in seconds")
		seed    = flag.Int64("seed", 0, "random seed, 0 uses the current time")
		games   = flag.Uint("games", 1, "number of games to play")
		threads = flag.Uint("threads", 2, "arena workers when playing more than one game")
		block   = flag.String("block", "opponent", "opponent win check: opponent, legacy or none")
		center  = flag.Bool("center", false, "play the first move closest to the center without searching")
		quiet   = flag.Bool("quiet", false, "don't print the board after every move")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := logx.NewLogger(os.Stderr, *verbose)

	policy, err := parseBlockPolicy(*block)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid flags")
	}
	if *size < 1 || *win < 1 || *win > *size {
		logger.Fatal().Int("size", *size).Int("win", *win).Msg("invalid board dimensions")
	}

	if *seed != 0 {
		s := *seed
		mcts.SetSeedGeneratorFn(func() int64 { return s })
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	factory := func(seconds float64, offset uint64) bench.AgentFactory[int] {
		return func() bench.Agent[int] {
			engine := mcts.NewEngine[int](mcts.DefaultLimits().SetSeconds(seconds))
			engine.Seed(uint64(mcts.SeedGeneratorFn()) + offset)
			engine.SetBlockPolicy(policy)
			engine.SetLogger(logger.With().Float64("budget", seconds).Logger())
			engine.SetContext(ctx)
			if *center {
				return centerOpening{engine}
			}
			return engine
		}
	}

	board := ox.NewBoard(*size, *win)
	if *games <= 1 {
		playOne(ctx, logger, board, [2]bench.Agent[int]{factory(*t1, 0)(), factory(*t2, 1)()}, *quiet)
		return
	}

	arena := bench.NewVersusArena[int](board, factory(*t1, 0), factory(*t2, 1)).WithContext(ctx)
	arena.P1Name = fmt.Sprintf("mcts-%.2fs", *t1)
	arena.P2Name = fmt.Sprintf("mcts-%.2fs", *t2)
	arena.Logger = logger
	arena.Listener = bench.LogListener[int]{Logger: logger}
	arena.Setup(*games, *threads)

	summary, err := arena.Run()
	if err != nil {
		logger.Fatal().Err(err).Msg("arena failed")
	}
	fmt.Printf("%s %d - %d %s, draws %d (first to move won %d, second %d)\n",
		summary.P1Name, summary.P1Wins, summary.P2Wins, summary.P2Name,
		summary.Draws, summary.FirstToMoveWins, summary.SecondToMoveWins)
}

func playOne(ctx context.Context, logger zerolog.Logger, board *ox.Board, agents [2]bench.Agent[int], quiet bool) {
	listener := printListener{
		renderer: newRenderer(termenv.NewOutput(os.Stdout)),
		quiet:    quiet,
	}

	record, err := bench.PlayGame[int](ctx, board, agents, listener)
	if err != nil {
		logger.Fatal().Err(err).Int("moves", len(record.Moves)).Msg("game aborted")
	}

	final := record.Final.(*ox.Board)
	logger.Info().
		Str("result", final.Termination().String()).
		Int("moves", len(record.Moves)).
		Floats64("rewards", record.Rewards).
		Msg("game over")
}

func parseBlockPolicy(s string) (mcts.BlockPolicy, error) {
	for _, p := range []mcts.BlockPolicy{mcts.BlockOpponent, mcts.BlockLegacy, mcts.BlockNone} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown block policy %q", s)
}

// Prints "<mark>: <move> ->" followed by the board after every move
type printListener struct {
	renderer renderer
	quiet    bool
}

func (p printListener) OnMoveMade(info bench.MoveInfo[int]) {
	mark := ox.PlayerToMark[info.Player]
	fmt.Printf("%s: %d ->\n", p.renderer.mark(mark).String(), info.Move)
	if !p.quiet {
		fmt.Println(p.renderer.board(info.State.(*ox.Board), info.Move))
	}
}

func (p printListener) OnFinishedGame(bench.VersusWorkerInfo[int]) {}

// Plays the center-most cell on an empty board, searches otherwise
type centerOpening struct {
	*mcts.Engine[int]
}

func (c centerOpening) ChooseAction(state mcts.GameState[int]) (int, error) {
	if board, ok := state.(*ox.Board); ok && len(board.Actions()) == board.Size()*board.Size() {
		if move, ok := board.CenterMove(); ok {
			return move, nil
		}
	}
	return c.Engine.ChooseAction(state)
}
