package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/daystram/gambit/bench"
	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/engine"
)

var (
	EngineName   = "Gambit"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		debug:         false,
		timeMs:        5000,
		hashTableSize: engine.DefaultHashTableSize,
		parallelPerft: true,
	}
)

type options struct {
	debug         bool
	timeMs        int64
	hashTableSize uint32
	parallelPerft bool
}

// Interface drives a single game over the UCI text protocol: it owns the
// position, a long-lived *engine.Engine (so the transposition table and
// history/killer tables persist across moves within a game), the position
// hint cache, and the chosen evaluator.
type Interface struct {
	board *board.Board
	eng   *engine.Engine
	eval  engine.Evaluator
	cache *engine.HintCache

	options options

	// engineRunning is touched from both the command-reading goroutine and
	// the in-flight search goroutine spawned by commandGo, so it is the one
	// piece of Interface state that must be atomic.
	engineRunning atomic.Bool
}

func NewInterface() *Interface {
	return &Interface{
		options: defaultOptions,
		eval:    engine.NewClassicalEvaluator(),
		cache:   engine.NewHintCache(),
	}
}

func (i *Interface) Run() error {
	i.reset()

	reader := bufio.NewReader(os.Stdin)
	for {
		cmd, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			continue
		}

		switch args := strings.Fields(cmd); args[0] {
		case "uci":
			i.commandUCI()
		case "ucinewgame":
			i.reset()
		case "isready":
			i.commandReady()
		case "setoption":
			i.commandSetOption(args[1:])
		case "position":
			i.commandPosition(args[1:])
		case "d":
			i.commandDraw()
		case "go":
			i.commandGo(args[1:])
		case "stop":
			i.commandStop()
		case "quit":
			return nil
		}
	}
}

func (i *Interface) commandUCI() {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option name Movetime type spin default %d min 100 max 3600000", defaultOptions.timeMs))
	i.println(fmt.Sprintf("option name Hash type spin default %d min %d max %d",
		defaultOptions.hashTableSize, engine.MinHashTableSize, engine.MaxHashTableSize))
	i.println("uciok")
}

func (i *Interface) commandReady() {
	if i.board != nil && i.eng != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "debug":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return
		}
		i.options.debug = value
	case "movetime":
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil || value < 100 || value > 3600000 {
			return
		}
		i.options.timeMs = value
	case "hash":
		value, err := strconv.ParseUint(valueStr, 10, 32)
		if err != nil || value > uint64(engine.MaxHashTableSize) {
			return
		}
		i.options.hashTableSize = uint32(value)
		i.reset()
	}
}

func (i *Interface) commandPosition(args []string) {
	if i.engineRunning.Load() || len(args) == 0 {
		return
	}

	var fen string
	var rest []string
	switch args[0] {
	case "fen":
		rest = args[1:]
		var fenFields []string
		for len(rest) > 0 && rest[0] != "moves" {
			fenFields = append(fenFields, rest[0])
			rest = rest[1:]
		}
		fen = strings.Join(fenFields, " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
		rest = args[1:]
	default:
		return
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return
	}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, uciMove := range rest[1:] {
			mv, ok := matchLegalUCI(b, uciMove)
			if !ok {
				return
			}
			b.Apply(mv)
		}
	}
	i.board = b
}

// matchLegalUCI finds the legal move whose UCI string equals s, the
// caller-boundary validation spec requires: search itself never produces
// an illegal move, but a move supplied from outside the engine (here, via
// the "position ... moves" command) must be checked against the legal set.
func matchLegalUCI(b *board.Board, s string) (board.Move, bool) {
	for _, mv := range b.GenerateLegalMoves(b.Turn()) {
		if mv.UCI() == s {
			return mv, true
		}
	}
	return board.Move{}, false
}

func (i *Interface) commandDraw() {
	if i.board == nil {
		return
	}
	i.println(board.MarshalFEN(i.board))
	i.println(i.board.State().String())
}

func (i *Interface) commandGo(args []string) {
	if i.board == nil || i.engineRunning.Load() {
		return
	}

	if len(args) > 0 && args[0] == "perft" {
		if len(args) != 2 {
			return
		}
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			return
		}
		out := make(chan string, 64)
		done := make(chan struct{})
		go func() {
			for s := range out {
				i.println(s)
			}
			close(done)
		}()
		_ = bench.Perft(depth, board.MarshalFEN(i.board), i.options.parallelPerft, true, out)
		close(out)
		<-done
		return
	}

	budget := engine.Budget{TimeMs: i.options.timeMs}
	for idx := 0; idx < len(args); idx++ {
		switch args[idx] {
		case "depth":
			if idx+1 >= len(args) {
				return
			}
			d, err := strconv.Atoi(args[idx+1])
			if err != nil {
				return
			}
			budget.MaxDepth = uint8(d)
			budget.TimeMs = 0
			idx++
		case "movetime":
			if idx+1 >= len(args) {
				return
			}
			ms, err := strconv.ParseInt(args[idx+1], 10, 64)
			if err != nil {
				return
			}
			budget.TimeMs = ms
			idx++
		}
	}

	i.engineRunning.Store(true)
	go func() {
		defer i.engineRunning.Store(false)

		var sink engine.SampleSink
		if i.options.debug {
			sink = func(s engine.Sample) {
				i.println(fmt.Sprintf("info depth %d score cp %d nodes %d pv %s",
					s.Depth, s.ScoreCP, i.eng.Nodes(), s.From.Notation()+s.To.Notation()))
			}
		}

		result, err := i.eng.PickMove(i.board, budget, i.eval, i.cache, sink, time.Now)
		if err != nil {
			i.println(fmt.Sprintf("info string %v", err))
			i.println("bestmove 0000")
			return
		}

		i.println(fmt.Sprintf("info depth %d score cp %d nodes %d", result.FinishedDepth, result.ScoreCP, result.Nodes))
		i.println(fmt.Sprintf("bestmove %s", result.Best.UCI()))
	}()
}

func (i *Interface) commandStop() {
	if i.engineRunning.Load() {
		i.eng.Stop()
	}
}

func (i *Interface) reset() {
	i.commandStop()
	i.eng = engine.NewEngine(engine.EngineConfig{
		HashTableSize: i.options.hashTableSize,
		Logger: func(format string, args ...any) {
			i.println(fmt.Sprintf("info string "+format, args...))
		},
	})
	i.commandPosition([]string{"startpos"})
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(os.Stdout, a...)
}
