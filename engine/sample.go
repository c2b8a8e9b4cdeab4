package engine

import (
	"fmt"
	"time"

	"github.com/daystram/gambit/board"
)

// Sample is emitted to an external sink once per completed iterative-
// deepening iteration whose depth clears MinLoggedDepth, carrying enough
// to reconstruct a labeled training example without the sink needing any
// further lookup.
type Sample struct {
	FEN       string
	ScoreCP   int32 // side-to-move point of view
	Depth     uint8
	From, To  board.Square
	KeyHex    string
	Timestamp time.Time
}

// SampleSink receives completed-iteration samples. The core search never
// reads the clock to stamp one — Timestamp is always supplied by the
// caller driving PickMove, keeping the search itself a pure function of
// its inputs.
type SampleSink func(Sample)

// newSample builds a Sample from a finished iteration's position and best
// move, formatting the Zobrist key as 16 zero-padded hex digits.
func newSample(b *board.Board, score int32, depth uint8, best board.Move, now time.Time) Sample {
	return Sample{
		FEN:       board.MarshalFEN(b),
		ScoreCP:   score,
		Depth:     depth,
		From:      best.From,
		To:        best.To,
		KeyHex:    fmt.Sprintf("%016x", b.Hash()),
		Timestamp: now,
	}
}
