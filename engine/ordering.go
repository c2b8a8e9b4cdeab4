package engine

import "github.com/daystram/gambit/board"

const (
	orderScoreTTHint     int64 = 1_000_000_000
	orderScoreKiller0    int64 = 500_000_000
	orderScoreKiller1    int64 = 500_000_000 - 1
	orderScoreCheckBonus int64 = 150

	historyMax   int32 = 1_000_000
	historyShift       = 32 // bonus is (depth+1)^2 * historyShift
)

// killerTable holds two quiet killer moves per ply.
type killerTable [MaxPly][2]board.Move

func (k *killerTable) record(ply uint8, mv board.Move) {
	if mv.Equals(k[ply][0]) {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = mv
}

// historyTable is the [side][from][to] cutoff bonus table used to order
// quiet moves that are not killers.
type historyTable [2 + 1][64][64]int32

func (h *historyTable) bonus(depth uint8) int32 {
	return int32(depth+1) * int32(depth+1) * historyShift
}

func (h *historyTable) record(s board.Side, mv board.Move, depth uint8) {
	v := &h[s][mv.From][mv.To]
	*v += h.bonus(depth)
	if *v > historyMax {
		*v = historyMax
	}
}

// manhattanCenterBonus rewards moves landing closer to the center four
// squares, used as the lowest-priority ordering tie-break.
func manhattanCenterBonus(to board.Square) int64 {
	x, y := int64(to.X()), int64(to.Y())
	dx := abs(x*2 - 7)
	dy := abs(y*2 - 7)
	return 8 - (dx+dy)/2
}

// scoreMoves annotates every move's Score field with its move-ordering
// priority, following spec's stacked annotation: TT hint, then MVV-LVA for
// captures, then killers/history/check for quiet moves, with the center
// bonus added to every move as the final tie-break. b is the
// position the moves were generated from (pre-move), used to read the
// captured piece's value and to detect gives-check for quiet moves when
// checkBonus is enabled — checkBonus is skipped at shallow/bulk nodes for
// speed, matching spec's "skipped in shallow nodes" annotation rule.
func (e *Engine) scoreMoves(b *board.Board, mvs []board.Move, ttHint board.Move, ply uint8, checkBonus bool) {
	for i := range mvs {
		mv := &mvs[i]
		switch {
		case mv.Equals(ttHint):
			mv.Score = orderScoreTTHint
		case mv.IsCapture:
			_, victim := b.PieceAt(mv.To)
			if mv.IsEnPassant {
				victim = board.PiecePawn
			}
			mv.Score = 10*int64(victim.Value()) - int64(mv.Piece.Value())
		case e.killers[ply][0].Equals(*mv):
			mv.Score = orderScoreKiller0
		case e.killers[ply][1].Equals(*mv):
			mv.Score = orderScoreKiller1
		default:
			mv.Score = int64(e.history[mv.IsTurn][mv.From][mv.To])
			if checkBonus && mv.IsPromote == board.PieceUnknown && mv.IsCastle == board.CastleDirectionUnknown {
				bb := b.Clone()
				bb.Apply(*mv)
				if bb.IsKingChecked(bb.Turn()) {
					mv.Score += orderScoreCheckBonus
				}
			}
		}
		mv.Score += manhattanCenterBonus(mv.To)
	}
}

// sortMoves performs a partial selection sort from index onward: picks the
// highest-scoring remaining move into position index. Cheap relative to a
// full sort since alpha-beta frequently cuts off after the first few
// moves and never needs the tail ordered.
func sortMoves(mvs []board.Move, index int) {
	best := index
	for i := index + 1; i < len(mvs); i++ {
		if mvs[i].Score > mvs[best].Score {
			best = i
		}
	}
	mvs[index], mvs[best] = mvs[best], mvs[index]
}
