package board

// isLegalAfter is the do/undo legality gate spec requires: it mutates the
// minimal bitboard state implied by mv, asks whether the mover's king is
// now attacked, and restores the board — no allocation, no Clone.
func (b *Board) isLegalAfter(mv Move) bool {
	s := mv.IsTurn

	if mv.IsCastle != CastleDirectionUnknown {
		kingSqs := posCastling[mv.IsCastle][PieceKing]
		rookSqs := posCastling[mv.IsCastle][PieceRook]
		b.set(s, PieceKing, kingSqs[0], false)
		b.set(s, PieceRook, rookSqs[0], false)
		b.set(s, PieceKing, kingSqs[1], true)
		b.set(s, PieceRook, rookSqs[1], true)

		legal := !b.IsAttacked(kingSqs[1], s.Opposite())

		b.set(s, PieceKing, kingSqs[1], false)
		b.set(s, PieceRook, rookSqs[1], false)
		b.set(s, PieceKing, kingSqs[0], true)
		b.set(s, PieceRook, rookSqs[0], true)
		return legal
	}

	capturedSide, capturedPiece := SideUnknown, PieceUnknown
	capturedSq := mv.To
	if mv.IsEnPassant {
		capturedSide, capturedPiece = s.Opposite(), PiecePawn
		if s == SideWhite {
			capturedSq = mv.To - Width
		} else {
			capturedSq = mv.To + Width
		}
	} else if mv.IsCapture {
		capturedSide, capturedPiece = b.PieceAt(mv.To)
	}

	b.set(s, mv.Piece, mv.From, false)
	if capturedPiece != PieceUnknown {
		b.set(capturedSide, capturedPiece, capturedSq, false)
	}
	b.set(s, mv.Piece, mv.To, true)

	kingSq := b.GetBitmap(s, PieceKing).LS1B()
	if mv.Piece == PieceKing {
		kingSq = mv.To
	}
	legal := !b.IsAttacked(kingSq, s.Opposite())

	b.set(s, mv.Piece, mv.To, false)
	if capturedPiece != PieceUnknown {
		b.set(capturedSide, capturedPiece, capturedSq, true)
	}
	b.set(s, mv.Piece, mv.From, true)

	return legal
}
