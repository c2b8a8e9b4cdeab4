package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/engine"
)

// search plays the engine against a random mover from fen, one side at a
// time, reporting PickMove's verdict at every engine ply — a debug harness for
// watching the root driver without a UCI front end.
func search(fen string, maxDepth, timeoutSeconds int) error {
	log.Println("============ search")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	e := engine.NewEngine(engine.EngineConfig{Logger: func(format string, args ...any) {
		log.Printf(format, args...)
	}})
	eval := engine.NewClassicalEvaluator()
	cache := engine.NewHintCache()
	budget := engine.Budget{MaxDepth: uint8(maxDepth), TimeMs: int64(timeoutSeconds) * 1000}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	playingSide := b.Turn()

	var history []board.Move
	for ply := 0; ply < 300; ply++ {
		fmt.Printf("\n=============== Move %d\n", b.FullMoveClock())

		var mv board.Move
		if b.Turn() == playingSide {
			result, err := e.PickMove(b, budget, eval, cache, nil, time.Now)
			if err != nil {
				return err
			}
			fmt.Printf("score=%d depth=%d nodes=%d\n", result.ScoreCP, result.FinishedDepth, result.Nodes)
			mv = result.Best
		} else {
			mvs := b.GenerateLegalMoves(b.Turn())
			if len(mvs) == 0 {
				break
			}
			mv = mvs[r.Intn(len(mvs))]
		}

		b.Apply(mv)
		history = append(history, mv)

		fmt.Printf("\n>>> %s: %s\n", mv.IsTurn, mv)
		fmt.Println(board.MarshalFEN(b))
		fmt.Println(drawBoard(b))

		if !b.State().IsRunning() {
			break
		}
	}

	log.Println("=============== game ended:", b.State())
	fmt.Println(board.MarshalFEN(b))
	dumpHistory(history)
	return nil
}

func dumpHistory(mvs []board.Move) {
	for i, mv := range mvs {
		if mv.IsTurn == board.SideWhite {
			fmt.Printf("%d.", i/2+1)
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}
