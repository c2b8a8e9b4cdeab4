package board

// Apply plays mv against b, mutating every piece of position state: piece
// placement, castling rights, en passant target, both clocks, side to move,
// and the incremental Zobrist hash. Callers are expected to only ever pass
// a move drawn from GenerateLegalMoves; Apply does not re-validate legality.
func (b *Board) Apply(mv Move) {
	s := mv.IsTurn
	prevEnPassant := b.enPassant
	if prevEnPassant != flagNoEnpassant && epHashApplies(b, prevEnPassant) {
		b.hash ^= zobristConstantEnPassant[prevEnPassant.X()]
	}
	b.enPassant = flagNoEnpassant

	isReset := mv.Piece == PiecePawn || mv.IsCapture
	b.halfMoveClock++
	if isReset {
		b.halfMoveClock = 0
	}
	if s == SideBlack {
		b.fullMoveClock++
	}

	switch {
	case mv.IsCastle != CastleDirectionUnknown:
		b.applyCastle(s, mv.IsCastle)
	case mv.IsEnPassant:
		b.applyEnPassant(s, mv)
	default:
		b.applyNormal(s, mv)
	}

	b.hash ^= zobristConstantCastleRights[b.castleRights]
	b.updateCastleRights(s, mv)
	b.hash ^= zobristConstantCastleRights[b.castleRights]

	if mv.Piece == PiecePawn && absSquareDiff(mv.From, mv.To) == 2*Width {
		b.enPassant = (mv.From + mv.To) / 2
	}

	b.hash ^= zobristConstantSideWhite
	b.turn = s.Opposite()

	if b.enPassant != flagNoEnpassant && epHashApplies(b, b.enPassant) {
		b.hash ^= zobristConstantEnPassant[b.enPassant.X()]
	}
}

func absSquareDiff(a, b Square) Square {
	if a > b {
		return a - b
	}
	return b - a
}

func (b *Board) applyCastle(s Side, d CastleDirection) {
	kingSqs := posCastling[d][PieceKing]
	rookSqs := posCastling[d][PieceRook]
	b.togglePiece(s, PieceKing, kingSqs[0])
	b.togglePiece(s, PieceRook, rookSqs[0])
	b.togglePiece(s, PieceKing, kingSqs[1])
	b.togglePiece(s, PieceRook, rookSqs[1])
}

func (b *Board) applyEnPassant(s Side, mv Move) {
	var capturedSq Square
	if s == SideWhite {
		capturedSq = mv.To - Width
	} else {
		capturedSq = mv.To + Width
	}
	b.togglePiece(s, PiecePawn, mv.From)
	b.togglePiece(s.Opposite(), PiecePawn, capturedSq)
	b.togglePiece(s, PiecePawn, mv.To)
}

func (b *Board) applyNormal(s Side, mv Move) {
	if mv.IsCapture {
		capturedSide, capturedPiece := b.PieceAt(mv.To)
		if capturedPiece != PieceUnknown {
			b.togglePiece(capturedSide, capturedPiece, mv.To)
		}
	}
	b.togglePiece(s, mv.Piece, mv.From)
	if mv.IsPromote != PieceUnknown {
		b.togglePiece(s, mv.IsPromote, mv.To)
	} else {
		b.togglePiece(s, mv.Piece, mv.To)
	}
}

// togglePiece flips a single occupant in place and keeps the Zobrist hash
// in lockstep: it is used both to remove a piece from its origin and to
// place it (or its promoted form) on its destination.
func (b *Board) togglePiece(s Side, p Piece, sq Square) {
	wasSet := maskCell[sq]&b.pieces[p]&b.sides[s] != 0
	b.set(s, p, sq, !wasSet)
	b.hash ^= zobristConstantPiece[s][p][sq]
}

// updateCastleRights revokes rights implied by mv: a king move forfeits
// both of that side's rights, and a rook departing or being captured on its
// home corner forfeits that single right.
func (b *Board) updateCastleRights(s Side, mv Move) {
	if mv.Piece == PieceKing {
		if s == SideWhite {
			b.castleRights.Set(CastleDirectionWhiteRight, false)
			b.castleRights.Set(CastleDirectionWhiteLeft, false)
		} else {
			b.castleRights.Set(CastleDirectionBlackRight, false)
			b.castleRights.Set(CastleDirectionBlackLeft, false)
		}
	}
	if mv.IsCastle == CastleDirectionUnknown {
		b.revokeIfRookMoved(mv.From)
		b.revokeIfRookMoved(mv.To)
	}
}

func (b *Board) revokeIfRookMoved(sq Square) {
	switch sq {
	case A1:
		b.castleRights.Set(CastleDirectionWhiteLeft, false)
	case H1:
		b.castleRights.Set(CastleDirectionWhiteRight, false)
	case A8:
		b.castleRights.Set(CastleDirectionBlackLeft, false)
	case H8:
		b.castleRights.Set(CastleDirectionBlackRight, false)
	}
}

// ApplyNullMove flips the side to move without playing a move, clearing any
// en passant target. Used by the search's null-move pruning, always against
// a Clone()d board rather than the live search-path board.
func (b *Board) ApplyNullMove() {
	if b.enPassant != flagNoEnpassant && epHashApplies(b, b.enPassant) {
		b.hash ^= zobristConstantEnPassant[b.enPassant.X()]
	}
	b.enPassant = flagNoEnpassant
	b.hash ^= zobristConstantSideWhite
	b.turn = b.turn.Opposite()
}
