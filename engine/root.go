package engine

import (
	"time"

	"github.com/daystram/gambit/board"
)

// MinLoggedDepth is the minimum finished iteration depth a sample must
// reach before it is emitted to the sink.
const MinLoggedDepth uint8 = 4

// aspirationWindowCP is the half-width of the aspiration window opened
// around the previous iteration's score once the search is deep enough
// for the position to have stabilized.
const aspirationWindowCP int32 = 200

// aspirationMinDepth is the first depth at which an aspiration window is
// tried instead of searching the full [-inf, +inf] range.
const aspirationMinDepth uint8 = 5

// mateFoundThreshold is compared against |score| to decide whether the
// root driver should stop deepening because a forced mate was found.
const mateFoundThreshold = MateScore - 1000

// Budget bounds a single PickMove call: a maximum depth and/or an optional
// wall-clock allowance. A zero TimeMs means the search is bounded by depth
// alone.
type Budget struct {
	MaxDepth uint8
	TimeMs   int64
}

// Result is PickMove's verdict: the move to play, its score from White's
// point of view, how deep the search got, and how many nodes it visited.
type Result struct {
	Best          board.Move
	ScoreCP       int32
	FinishedDepth uint8
	Nodes         uint64
}

// PickMove runs iterative deepening from b's current position up to
// budget's depth and/or time limit, consulting and then populating cache
// with the result, and emitting a Sample to sink for every iteration deep
// enough to log. now supplies the start time and the timestamps of hint
// cache entries and samples; the deadline checks themselves read the
// system clock.
func (e *Engine) PickMove(b *board.Board, budget Budget, eval Evaluator, cache *HintCache, sink SampleSink, now func() time.Time) (Result, error) {
	rootMoves := b.GenerateLegalMoves(b.Turn())
	if len(rootMoves) == 0 {
		return Result{}, ErrNoLegalMove
	}

	start := now()
	var deadline time.Time
	hasDeadline := budget.TimeMs > 0
	if hasDeadline {
		deadline = start.Add(time.Duration(budget.TimeMs) * time.Millisecond)
		e.clock.SetDeadline(deadline)
	} else {
		e.clock.Reset()
	}

	maxDepth := budget.MaxDepth
	if maxDepth == 0 {
		maxDepth = MaxDepth
	}

	var ttHint board.Move
	if cache != nil {
		if rec, ok := cache.Get(b.Hash()); ok {
			ttHint = rec.Best
		}
	}
	e.scoreMoves(b, rootMoves, ttHint, 0, false)
	for i := range rootMoves {
		sortMoves(rootMoves, i)
	}

	var result Result
	var lastScore int32

	for d := uint8(1); d <= maxDepth; d++ {
		if hasDeadline && time.Until(deadline) < rootMoveTimeGuard {
			break
		}

		windowLow, windowHigh := int32(-MateScore-1), int32(MateScore+1)
		if d >= aspirationMinDepth {
			windowLow, windowHigh = lastScore-aspirationWindowCP, lastScore+aspirationWindowCP
		}

		var iterBest board.Move
		iterScore := int32(-MateScore - 1)
		aborted := false

	searchIteration:
		for {
			localBest := board.Move{}
			localScore := int32(-MateScore - 1)
			alpha := windowLow

			e.nodes = 0
			e.pathHistory[0] = b.Hash()

			for i := range rootMoves {
				mv := rootMoves[i]

				if hasDeadline && time.Until(deadline) < rootMoveTimeGuard {
					aborted = true
					break
				}

				nb := b.Clone()
				nb.Apply(mv)
				e.pathHistory[1] = nb.Hash()
				score := -e.negamax(nb, d-1, 1, -windowHigh, -alpha, eval, true)

				if score > localScore {
					localScore = score
					localBest = mv
				}
				if score > alpha {
					alpha = score
				}
			}

			if aborted {
				break searchIteration
			}

			failedWindow := windowLow != -MateScore-1 || windowHigh != MateScore+1
			if failedWindow && (localScore <= windowLow || localScore >= windowHigh) {
				windowLow, windowHigh = -MateScore-1, MateScore+1
				continue searchIteration
			}

			iterBest, iterScore = localBest, localScore
			break searchIteration
		}

		if aborted || iterBest.IsNull() {
			break
		}

		lastScore = iterScore
		result = Result{Best: iterBest, ScoreCP: toWhitePOV(iterScore, b.Turn()), FinishedDepth: d, Nodes: e.nodes}

		e.logf("depth %d score %d nodes %d move %s", d, result.ScoreCP, e.nodes, iterBest.UCI())

		if cache != nil {
			cache.Put(b.Hash(), HintRecord{Best: iterBest, ScoreCP: iterScore, Depth: d, Timestamp: now()})
		}

		if sink != nil && d >= MinLoggedDepth {
			sink(newSample(b, iterScore, d, iterBest, now()))
		}

		if abs(iterScore) > mateFoundThreshold {
			break
		}

		// previous best to front for the next iteration's move ordering.
		for i, mv := range rootMoves {
			if mv.Equals(iterBest) {
				rootMoves[0], rootMoves[i] = rootMoves[i], rootMoves[0]
				break
			}
		}
	}

	return result, nil
}

func toWhitePOV(scoreSideToMove int32, turn board.Side) int32 {
	if turn == board.SideBlack {
		return -scoreSideToMove
	}
	return scoreSideToMove
}

