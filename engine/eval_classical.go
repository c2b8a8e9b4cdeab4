package engine

import "github.com/daystram/gambit/board"

// pst holds piece-square values from White's perspective, rank 8 first,
// taken from https://www.chessprogramming.org/Simplified_Evaluation_Function.
var pst = [6 + 1][64]int32{
	board.PiecePawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.PieceKnight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	board.PieceBishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.PieceRook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	board.PieceQueen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	board.PieceKing: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

const (
	bishopPairBonus  int32 = 30
	mobilityWeight   int32 = 2
	tempoBonus       int32 = 8
)

// pstIndex mirrors a Square vertically for White, since pst is laid out
// rank-8-first from White's perspective: a White piece reads index sq^56,
// a Black piece reads its own index, i.e. the same table upside down.
func pstIndex(s board.Side, sq board.Square) int {
	if s == board.SideWhite {
		return int(sq) ^ 56
	}
	return int(sq)
}

// classicalEvaluator scores a position from White's point of view using
// material, piece-square tables, the bishop-pair bonus, a mobility
// differential, and a tempo bonus for the side to move.
type classicalEvaluator struct{}

// NewClassicalEvaluator returns the hand-tuned material+positional
// evaluator used as the default and as the neural evaluator's fallback.
func NewClassicalEvaluator() Evaluator {
	return classicalEvaluator{}
}

func (classicalEvaluator) Evaluate(b *board.Board) int32 {
	white, black := b.MaterialBalance()
	score := white - black

	for _, p := range []board.Piece{
		board.PiecePawn, board.PieceKnight, board.PieceBishop,
		board.PieceRook, board.PieceQueen, board.PieceKing,
	} {
		wbm := b.GetBitmap(board.SideWhite, p)
		for wbm != 0 {
			sq := wbm.LS1B()
			wbm &^= 1 << sq
			score += pst[p][pstIndex(board.SideWhite, sq)]
		}
		bbm := b.GetBitmap(board.SideBlack, p)
		for bbm != 0 {
			sq := bbm.LS1B()
			bbm &^= 1 << sq
			score -= pst[p][pstIndex(board.SideBlack, sq)]
		}
	}

	if b.GetBitmap(board.SideWhite, board.PieceBishop).BitCount() >= 2 {
		score += bishopPairBonus
	}
	if b.GetBitmap(board.SideBlack, board.PieceBishop).BitCount() >= 2 {
		score -= bishopPairBonus
	}

	whiteMoves := len(b.GenerateLegalMoves(board.SideWhite))
	blackMoves := len(b.GenerateLegalMoves(board.SideBlack))
	score += mobilityWeight * int32(whiteMoves-blackMoves)

	if b.Turn() == board.SideWhite {
		score += tempoBonus
	} else {
		score -= tempoBonus
	}

	return score
}
