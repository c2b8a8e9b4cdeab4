package engine

import "errors"

// ErrWeightLoadFailed is returned by NewNeuralEvaluator when the supplied
// weight bytes cannot be decoded or are shaped wrong. Callers never see
// this surface in practice: NewNeuralEvaluator logs it once and falls back
// to the classical evaluator rather than propagating it.
var ErrWeightLoadFailed = errors.New("weight load failed")

// ErrNoLegalMove is returned by PickMove when the side to move has no
// legal moves. The caller distinguishes checkmate from stalemate via
// Board.State().IsCheckmate().
var ErrNoLegalMove = errors.New("no legal move")
