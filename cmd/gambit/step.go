package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/gambit/board"
)

// step plays random legal moves from fen until the game ends, printing the
// board and per-ply timing for move generation, move application, and
// state derivation — a debug aid for the move generator and legality
// filter in isolation, with no search involved.
func step(fen string) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesApply         []time.Duration
		timesState         []time.Duration
	)
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	r := rand.New(rand.NewSource(1))

stepLoop:
	for ply := 0; ply < 5000; ply++ {
		t1 := time.Now()
		mvs := b.GenerateLegalMoves(b.Turn())
		t2 := time.Now()
		timesGenerateMoves = append(timesGenerateMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			break stepLoop
		}
		mv := mvs[r.Intn(len(mvs))]

		t1 = time.Now()
		b.Apply(mv)
		t2 = time.Now()
		timesApply = append(timesApply, t2.Sub(t1))

		t1 = time.Now()
		st := b.State()
		t2 = time.Now()
		timesState = append(timesState, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, mv.IsTurn, mv)
		fmt.Println(drawBoard(b))
		fmt.Println(board.MarshalFEN(b))

		if !st.IsRunning() {
			break stepLoop
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(b.State())
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("apply:", avg(timesApply))
	fmt.Println("state:", avg(timesState))
	return nil
}
