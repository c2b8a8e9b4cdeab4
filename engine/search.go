package engine

import (
	"runtime"
	"time"

	"github.com/daystram/gambit/board"
	"golang.org/x/exp/constraints"
)

// MateScore is the magnitude assigned to a checkmate at ply 0; a mate found
// deeper is reported as MateScore-ply, so shallower mates always outrank
// deeper ones during comparison.
const MateScore int32 = 30_000

// DrawScore is the score of a stalemate; fifty-move, insufficient-material
// and path-repetition draws are scored by drawScore, which offsets it by
// contempt.
const DrawScore int32 = 0

// contemptCP nudges search away from forcing an early draw when ahead, and
// toward one when behind, matching spec's ±12cp contempt.
const contemptCP int32 = 12

const (
	nullMoveMinDepth        uint8 = 3
	nullMoveReductionShallow uint8 = 2
	nullMoveReductionDeep    uint8 = 3
	nullMoveDeepDepthBound   uint8 = 6

	lateMovePruningMaxDepth   uint8 = 3
	lateMovePruningMoveIndex  int   = 8

	futilityDepth  uint8 = 1
	futilityMargin int32 = 225

	lateMoveReductionMinDepth uint8 = 4
	lateMoveReductionMoveIndex int  = 6
	lateMoveReductionShallowMoveIndex int = 10
)

// EngineConfig configures a long-lived Engine instance.
type EngineConfig struct {
	// HashTableSize is the transposition table's entry count, rounded up
	// to a power of two in [2^12, 2^22]. Zero uses DefaultHashTableSize.
	HashTableSize uint32

	// Logger receives ambient diagnostics (e.g. a neural weight load
	// falling back to classical). Nil disables logging entirely.
	Logger func(format string, args ...any)
}

// Engine owns the mutable search state that persists across PickMove calls
// for a single game: the transposition table, killer/history tables, and
// node/time bookkeeping for the in-flight search. It is not safe for
// concurrent use by more than one search at a time.
type Engine struct {
	tt      *TranspositionTable
	killers killerTable
	history historyTable

	clock  *Clock
	logger func(format string, args ...any)
	nodes  uint64

	// pathHistory is the Zobrist key of every position reached on the
	// current search path (not the whole game), keyed by ply, used to
	// detect and penalize repetition inside the tree.
	pathHistory [MaxPly]uint64
}

// NewEngine builds an Engine with a fresh transposition table.
func NewEngine(cfg EngineConfig) *Engine {
	size := cfg.HashTableSize
	if size == 0 {
		size = DefaultHashTableSize
	}
	return &Engine{
		tt:     NewTranspositionTable(size),
		clock:  NewClock(),
		logger: cfg.Logger,
	}
}

// logf forwards to the configured logger, a no-op when none was supplied.
func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger(format, args...)
	}
}

// NewGame clears every table that must not leak between unrelated games:
// the transposition table and the history table. Killers are ply-scoped
// and get overwritten naturally, so they are left alone.
func (e *Engine) NewGame() {
	e.tt.Clear()
	e.history = historyTable{}
}

// Nodes reports the node count visited by the most recently completed or
// in-flight search.
func (e *Engine) Nodes() uint64 { return e.nodes }

// Stop requests the in-flight search wind down at its next deadline check,
// honoring a UCI "stop" command from a goroutine other than the search's
// own; it is a no-op if no search is running.
func (e *Engine) Stop() { e.clock.Stop() }

// AlphaBeta is the root entry point for a single fixed-depth search with an
// absolute wall-clock deadline. eval scores terminal/leaf positions from
// White's point of view; the negamax recursion below flips sign per ply so
// every comparison is made from the side-to-move's point of view.
func (e *Engine) AlphaBeta(b *board.Board, depth uint8, eval Evaluator, deadline time.Time) (int32, board.Move) {
	e.nodes = 0
	e.clock.SetDeadline(deadline)
	e.pathHistory[0] = b.Hash()

	score := e.negamax(b, depth, 0, -MateScore-1, MateScore+1, eval, true)
	_, mv, _, _, hasHint := e.tt.Get(b, 0)
	if !hasHint {
		mv = board.Move{}
	}
	return score, mv
}

// negamax searches b to depth plies (or until quiescent) and returns a
// score from the side-to-move's point of view. ply counts distance from the
// search root, used for mate distance scoring and killer/history indexing.
func (e *Engine) negamax(b *board.Board, depth uint8, ply uint8, alpha, beta int32, eval Evaluator, allowNull bool) int32 {
	e.nodes++

	if ply > 0 {
		if b.IsFiftyMoveDraw() || b.IsInsufficientMaterial() {
			return e.drawScore(b)
		}
		if e.isPathRepeated(b, ply) {
			return e.drawScore(b)
		}
	}

	if e.clock.Expired() {
		return e.quiescence(b, alpha, beta, eval, ply)
	}

	if depth == 0 {
		return e.quiescence(b, alpha, beta, eval, ply)
	}

	alphaOrig := alpha

	ttHint := board.Move{}
	typ, ttMv, ttScore, ok, hasHint := e.tt.Get(b, depth)
	if hasHint {
		ttHint = ttMv
	}
	if ok {
		switch typ {
		case EntryTypeExact:
			return int32(ttScore)
		case EntryTypeLowerBound:
			if int32(ttScore) > alpha {
				alpha = int32(ttScore)
			}
		case EntryTypeUpperBound:
			if int32(ttScore) < beta {
				beta = int32(ttScore)
			}
		}
		if alpha >= beta {
			return int32(ttScore)
		}
	}

	inCheck := b.IsKingChecked(b.Turn())

	if allowNull && !inCheck && ply > 0 && depth >= nullMoveMinDepth && hasNonPawnMaterial(b, b.Turn()) &&
		e.evalToMove(b, eval) >= beta {
		r := nullMoveReductionShallow
		if depth >= nullMoveDeepDepthBound {
			r = nullMoveReductionDeep
		}
		nb := b.Clone()
		nb.ApplyNullMove()
		e.pathHistory[ply+1] = nb.Hash()
		var reduced int32
		if depth > r {
			reduced = -e.negamax(nb, depth-1-r, ply+1, -beta, -beta+1, eval, false)
		} else {
			reduced = -e.negamax(nb, 0, ply+1, -beta, -beta+1, eval, false)
		}
		if reduced >= beta {
			return beta
		}
	}

	mvs := b.GenerateLegalMoves(b.Turn())
	if len(mvs) == 0 {
		if inCheck {
			return -MateScore + int32(ply)
		}
		return DrawScore
	}

	e.scoreMoves(b, mvs, ttHint, ply, depth > 2)

	best := board.Move{}
	bestScore := -MateScore - 1
	quietIndex := 0

	for i := range mvs {
		if e.clock.ShouldYield() {
			runtime.Gosched()
		}

		sortMoves(mvs, i)
		mv := mvs[i]

		isQuiet := !mv.IsCapture && mv.IsPromote == board.PieceUnknown

		nb := b.Clone()
		nb.Apply(mv)
		e.pathHistory[ply+1] = nb.Hash()
		givesCheck := nb.IsKingChecked(nb.Turn())

		if isQuiet && depth <= lateMovePruningMaxDepth && quietIndex >= lateMovePruningMoveIndex && !inCheck && !givesCheck {
			quietIndex++
			continue
		}

		if isQuiet && depth == futilityDepth && !inCheck && !givesCheck {
			staticEval := e.evalToMove(b, eval)
			if staticEval+futilityMargin <= alpha {
				quietIndex++
				continue
			}
		}

		childDepth := depth - 1
		var score int32
		if isQuiet && !inCheck && !givesCheck && depth >= lateMoveReductionMinDepth && quietIndex >= lateMoveReductionMoveIndex {
			r := uint8(1)
			if quietIndex >= lateMoveReductionShallowMoveIndex {
				r = 2
			}
			reducedDepth := childDepth
			if reducedDepth > r {
				reducedDepth -= r
			} else {
				reducedDepth = 0
			}
			score = -e.negamax(nb, reducedDepth, ply+1, -alpha-1, -alpha, eval, true)
			if score > alpha {
				score = -e.negamax(nb, childDepth, ply+1, -beta, -alpha, eval, true)
			}
		} else {
			score = -e.negamax(nb, childDepth, ply+1, -beta, -alpha, eval, true)
		}

		if isQuiet {
			quietIndex++
		}

		if score > bestScore {
			bestScore = score
			best = mv
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if isQuiet {
				e.killers.record(ply, mv)
				e.history.record(mv.IsTurn, mv, depth)
			}
			break
		}
	}

	var storeType EntryType
	switch {
	case bestScore <= alphaOrig:
		storeType = EntryTypeUpperBound
	case bestScore >= beta:
		storeType = EntryTypeLowerBound
	default:
		storeType = EntryTypeExact
	}
	e.tt.Set(b, storeType, best, clampScore16(bestScore), depth)

	return bestScore
}

// quiescence extends the search along captures (and, while in check, every
// evasion) until the position is quiet, returning a stand-pat-bounded score
// from the side-to-move's point of view. Promotions are searched along with
// captures; its recursion stops at ply MaxPly-1, where it returns the
// stand-pat score, and it never consults the clock beyond the node-count increment, so a
// deadline expiring mid-quiescence still returns a usable finite score.
func (e *Engine) quiescence(b *board.Board, alpha, beta int32, eval Evaluator, ply uint8) int32 {
	e.nodes++

	inCheck := b.IsKingChecked(b.Turn())
	standPat := e.evalToMove(b, eval)

	if !inCheck {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	if ply >= MaxPly-1 {
		return standPat
	}

	mvs := b.GenerateLegalMoves(b.Turn())
	if len(mvs) == 0 {
		if inCheck {
			return -MateScore + int32(ply)
		}
		return DrawScore
	}

	if !inCheck {
		captures := mvs[:0]
		for _, mv := range mvs {
			if mv.IsCapture || mv.IsPromote != board.PieceUnknown {
				captures = append(captures, mv)
			}
		}
		mvs = captures
	}

	e.scoreMoves(b, mvs, board.Move{}, ply, false)

	best := standPat
	for i := range mvs {
		sortMoves(mvs, i)
		mv := mvs[i]

		nb := b.Clone()
		nb.Apply(mv)
		score := -e.quiescence(nb, -beta, -alpha, eval, ply+1)

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	return best
}

// evalToMove evaluates b and flips the sign so the result is from the
// current side to move's point of view, matching every Evaluator's
// White-POV contract.
func (e *Engine) evalToMove(b *board.Board, eval Evaluator) int32 {
	v := eval.Evaluate(b)
	if b.Turn() == board.SideBlack {
		v = -v
	}
	return v
}

// drawScore applies contempt: a draw is scored as mildly bad for the side
// to move when that side holds a material edge, and mildly good otherwise,
// so the search prefers to play on rather than force an equal draw when
// ahead, and is happy to head for one when behind.
func (e *Engine) drawScore(b *board.Board) int32 {
	white, black := b.MaterialBalance()
	var edge int32
	if b.Turn() == board.SideWhite {
		edge = white - black
	} else {
		edge = black - white
	}
	if edge > 0 {
		return -contemptCP
	}
	if edge < 0 {
		return contemptCP
	}
	return DrawScore
}

func (e *Engine) isPathRepeated(b *board.Board, ply uint8) bool {
	h := b.Hash()
	for p := uint8(0); p < ply; p++ {
		if e.pathHistory[p] == h {
			return true
		}
	}
	return false
}

func hasNonPawnMaterial(b *board.Board, s board.Side) bool {
	return b.GetBitmap(s, board.PieceKnight)|b.GetBitmap(s, board.PieceBishop)|
		b.GetBitmap(s, board.PieceRook)|b.GetBitmap(s, board.PieceQueen) != 0
}

func clampScore16(v int32) int16 {
	const maxI16 = 1<<15 - 1
	const minI16 = -(1 << 15)
	return int16(min(max(v, minI16), maxI16))
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return x * -1
	}
	return x
}
