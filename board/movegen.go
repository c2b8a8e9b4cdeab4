package board

// GenerateLegalMoves returns every legal move available to s in the
// current position: a move is legal iff, once played, the mover's king is
// not attacked.
func (b *Board) GenerateLegalMoves(s Side) []Move {
	kingBM := b.GetBitmap(s, PieceKing)
	if kingBM == 0 {
		return nil
	}
	kingSq := kingBM.LS1B()
	check := b.computeCheckInfo(s, kingSq)
	pins := b.computePins(s, kingSq)

	var mvs []Move

	if check.numCheckers >= 2 {
		b.genKingMoves(s, kingSq, &mvs)
		return mvs
	}

	for _, p := range []Piece{PiecePawn, PieceKnight, PieceBishop, PieceRook, PieceQueen} {
		bm := b.GetBitmap(s, p)
		for bm != 0 {
			from, rest := bm.popLS1B()
			bm = rest
			dest := b.genValidDestination(from, s, p) &^ b.sides[s]
			if pinLine, pinned := pins[from]; pinned {
				dest &= pinLine
			}
			if check.numCheckers == 1 {
				evasions := check.checkRay
				// an en passant capture removes a checking pawn without
				// landing on the pawn's own square.
				if ep, ok := b.EnPassant(); ok && p == PiecePawn && check.checkers&b.pieces[PiecePawn] != 0 {
					evasions |= maskCell[ep]
				}
				dest &= evasions
			}
			b.emitMovesFromDestinations(s, p, from, dest, &mvs)
		}
	}

	b.genKingMoves(s, kingSq, &mvs)

	if check.numCheckers == 0 {
		b.genCastlingMoves(s, &mvs)
	}

	return mvs
}

func (b *Board) genKingMoves(s Side, kingSq Square, mvs *[]Move) {
	dest := b.genValidDestination(kingSq, s, PieceKing) &^ b.sides[s]
	b.emitMovesFromDestinations(s, PieceKing, kingSq, dest, mvs)
}

func (b *Board) emitMovesFromDestinations(s Side, p Piece, from Square, dest bitmap, mvs *[]Move) {
	for dest != 0 {
		to, rest := dest.popLS1B()
		dest = rest

		ep, hasEP := b.EnPassant()
		isEnPassant := p == PiecePawn && hasEP && to == ep
		isCapture := maskCell[to]&b.occupied != 0 || isEnPassant

		promotes := p == PiecePawn && (maskCell[to]&(maskRow[0]|maskRow[7])) != 0
		var candidates []Move
		if promotes {
			candidates = append(candidates, Move{
				IsTurn: s, Piece: p, From: from, To: to,
				IsCapture: isCapture, IsEnPassant: isEnPassant, IsPromote: PieceQueen,
			})
		} else {
			candidates = append(candidates, Move{
				IsTurn: s, Piece: p, From: from, To: to,
				IsCapture: isCapture, IsEnPassant: isEnPassant,
			})
		}

		for _, mv := range candidates {
			if b.isLegalAfter(mv) {
				*mvs = append(*mvs, mv)
			}
		}
	}
}

func (b *Board) genCastlingMoves(s Side, mvs *[]Move) {
	if !b.castleRights.IsSideAllowed(s) {
		return
	}
	var dirs []CastleDirection
	if s == SideWhite {
		dirs = []CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft}
	} else {
		dirs = []CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft}
	}

	kingSq := b.GetBitmap(s, PieceKing).LS1B()
	rookBM := b.GetBitmap(s, PieceRook)

	for _, d := range dirs {
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		kingSqs := posCastling[d][PieceKing]
		rookSqs := posCastling[d][PieceRook]
		if kingSq != kingSqs[0] || maskCell[rookSqs[0]]&rookBM == 0 {
			continue
		}
		if maskCastling[d]&b.occupied != 0 {
			continue
		}
		passThrough := between[kingSqs[0]][kingSqs[1]] | maskCell[kingSqs[0]] | maskCell[kingSqs[1]]
		blocked := false
		for sq := passThrough; sq != 0; {
			var probe Square
			probe, sq = sq.popLS1B()
			if b.IsAttacked(probe, s.Opposite()) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		*mvs = append(*mvs, Move{IsTurn: s, Piece: PieceKing, From: kingSqs[0], To: kingSqs[1], IsCastle: d})
	}
}
