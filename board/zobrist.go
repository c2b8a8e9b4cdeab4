package board

// ComputeKey computes the Zobrist key of b purely from its piece placement,
// side to move, castling rights, and (conditionally) en passant file. It is
// always consistent with the key Board maintains incrementally through
// Apply — tests rely on this to catch incremental-update drift.
func ComputeKey(b *Board) uint64 {
	var key uint64
	for sq := Square(0); sq < TotalCells; sq++ {
		s, p := b.PieceAt(sq)
		if p == PieceUnknown {
			continue
		}
		key ^= zobristConstantPiece[s][p][sq]
	}
	if b.turn == SideWhite {
		key ^= zobristConstantSideWhite
	}
	key ^= zobristConstantCastleRights[b.castleRights]
	if ep, ok := b.EnPassant(); ok && epHashApplies(b, ep) {
		key ^= zobristConstantEnPassant[ep.X()]
	}
	return key
}

// epHashApplies reports whether the en passant target square actually
// matters to the hash: an enemy pawn of the side to move must be standing
// adjacent, on the rank behind the target square, ready to capture onto it.
// This is what spec calls "EP hashing rule" / "EP neutrality" — two
// positions differing only in a dead en passant square must hash equal.
func epHashApplies(b *Board, ep Square) bool {
	capturerPawns := b.GetBitmap(b.turn, PiecePawn)
	captureSourceSquares := maskPawnAttack[b.turn.Opposite()][ep]
	return captureSourceSquares&capturerPawns != 0
}

// rehash recomputes b.hash from scratch. Used after FEN parsing.
func (b *Board) rehash() {
	b.hash = ComputeKey(b)
}
