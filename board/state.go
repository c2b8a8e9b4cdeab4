package board

// State summarizes the outcome of the game at the current position.
type State uint8

const (
	// StateUnknown is returned only before a Board is initialized.
	StateUnknown State = iota

	// StateRunning is when the game is in progress.
	StateRunning

	// StateCheckWhite is when White's King is in check.
	StateCheckWhite

	// StateCheckBlack is when Black's King is in check.
	StateCheckBlack

	// StateCheckmateWhite is when White is checkmated.
	StateCheckmateWhite

	// StateCheckmateBlack is when Black is checkmated.
	StateCheckmateBlack

	// StateStalemate is when the side to move has no legal move and is not
	// in check.
	StateStalemate

	// StateFiftyMoveViolated is when the half-move clock has reached 100.
	StateFiftyMoveViolated

	// StateInsufficientMaterial is when neither side can deliver checkmate
	// with the material remaining on the board.
	StateInsufficientMaterial
)

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheck() bool {
	switch s {
	case StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheckmate() bool {
	switch s {
	case StateCheckmateWhite, StateCheckmateBlack:
		return true
	default:
		return false
	}
}

func (s State) IsDraw() bool {
	switch s {
	case StateStalemate, StateFiftyMoveViolated, StateInsufficientMaterial:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheckWhite:
		return "StateCheckWhite"
	case StateCheckBlack:
		return "StateCheckBlack"
	case StateCheckmateWhite:
		return "StateCheckmateWhite"
	case StateCheckmateBlack:
		return "StateCheckmateBlack"
	case StateStalemate:
		return "StateStalemate"
	case StateFiftyMoveViolated:
		return "StateFiftyMoveViolated"
	case StateInsufficientMaterial:
		return "StateInsufficientMaterial"
	default:
		return ""
	}
}

// State derives the game state from scratch. Callers on a search hot path
// should prefer the narrower IsKingChecked/IsFiftyMoveDraw/
// IsInsufficientMaterial queries, which avoid generating a move list.
func (b *Board) State() State {
	mvs := b.GenerateLegalMoves(b.turn)
	inCheck := b.IsKingChecked(b.turn)

	if len(mvs) == 0 {
		if inCheck {
			if b.turn == SideWhite {
				return StateCheckmateWhite
			}
			return StateCheckmateBlack
		}
		return StateStalemate
	}
	if b.halfMoveClock >= 100 {
		return StateFiftyMoveViolated
	}
	if b.IsInsufficientMaterial() {
		return StateInsufficientMaterial
	}
	if inCheck {
		if b.turn == SideWhite {
			return StateCheckWhite
		}
		return StateCheckBlack
	}
	return StateRunning
}

// IsFiftyMoveDraw reports whether the half-move (50-move) clock has reached
// its limit.
func (b *Board) IsFiftyMoveDraw() bool {
	return b.halfMoveClock >= 100
}

// IsInsufficientMaterial reports whether neither side has enough material
// remaining to deliver checkmate: no pawns, rooks, or queens, and the minor
// pieces are none, a single minor in total, one bishop per side on
// same-colored squares, or two knights of one side against a lone king.
// Other one-minor-each cases (K+N v K+N, K+N v K+B, opposite-colored
// bishops) are not treated as a draw.
func (b *Board) IsInsufficientMaterial() bool {
	if b.pieces[PiecePawn] != 0 || b.pieces[PieceRook] != 0 || b.pieces[PieceQueen] != 0 {
		return false
	}

	whiteMinors := (b.pieces[PieceBishop] | b.pieces[PieceKnight]) & b.sides[SideWhite]
	blackMinors := (b.pieces[PieceBishop] | b.pieces[PieceKnight]) & b.sides[SideBlack]
	whiteCount := whiteMinors.BitCount()
	blackCount := blackMinors.BitCount()

	if whiteCount == 0 && blackCount == 0 {
		return true // K vs K
	}
	if whiteCount+blackCount == 1 {
		return true // K+minor vs K
	}
	if whiteCount == 1 && blackCount == 1 {
		whiteBishop := whiteMinors & b.pieces[PieceBishop]
		blackBishop := blackMinors & b.pieces[PieceBishop]
		if whiteBishop != 0 && blackBishop != 0 {
			return squareColor(whiteBishop.LS1B()) == squareColor(blackBishop.LS1B())
		}
		if whiteMinors&b.pieces[PieceKnight] != 0 && blackMinors&b.pieces[PieceKnight] != 0 {
			return false // two knights of opposite sides is not automatically a draw
		}
		return false
	}
	if whiteCount == 2 && blackCount == 0 && whiteMinors&b.pieces[PieceKnight] == whiteMinors {
		return true // two same-side knights vs lone king
	}
	if blackCount == 2 && whiteCount == 0 && blackMinors&b.pieces[PieceKnight] == blackMinors {
		return true
	}
	return false
}

// squareColor returns 0 for a dark square and 1 for a light square.
func squareColor(sq Square) int {
	return int((sq/8 + sq%8) % 2)
}
