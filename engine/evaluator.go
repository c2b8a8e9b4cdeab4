package engine

import "github.com/daystram/gambit/board"

// Evaluator scores a position in centipawns from White's point of view.
// Both the classical and neural implementations are pure functions of b.
type Evaluator interface {
	Evaluate(b *board.Board) int32
}

// EvaluatorFunc adapts a bare function to Evaluator.
type EvaluatorFunc func(b *board.Board) int32

func (f EvaluatorFunc) Evaluate(b *board.Board) int32 { return f(b) }
