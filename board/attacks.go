package board

// attackersTo returns the bitmap of all bySide pieces that attack sq, using
// the inverse-attack trick: shoot each piece kind's attack pattern from sq
// and see which bySide pieces of the matching kind it lands on.
func (b *Board) attackersTo(sq Square, bySide Side) bitmap {
	sideBM := b.sides[bySide]
	var attackers bitmap
	attackers |= maskPawnAttack[bySide.Opposite()][sq] & b.pieces[PiecePawn] & sideBM
	attackers |= maskKnight[sq] & b.pieces[PieceKnight] & sideBM
	attackers |= maskKing[sq] & b.pieces[PieceKing] & sideBM
	diag := hitDiagonals(sq, b.occupied)
	attackers |= diag & (b.pieces[PieceBishop] | b.pieces[PieceQueen]) & sideBM
	lateral := hitLaterals(sq, b.occupied)
	attackers |= lateral & (b.pieces[PieceRook] | b.pieces[PieceQueen]) & sideBM
	return attackers
}

// IsAttacked reports whether sq is attacked by any bySide piece.
func (b *Board) IsAttacked(sq Square, bySide Side) bool {
	return b.attackersTo(sq, bySide) != 0
}

// IsKingChecked reports whether s's king is currently attacked.
func (b *Board) IsKingChecked(s Side) bool {
	kingBM := b.GetBitmap(s, PieceKing)
	if kingBM == 0 {
		return false
	}
	return b.IsAttacked(kingBM.LS1B(), s.Opposite())
}

// checkInfo describes the checkers against the side to move, and whether
// each is a slider (so interposition is possible).
type checkInfo struct {
	checkers    bitmap
	numCheckers uint8
	// checkRay is the set of squares a non-king move may land on to resolve
	// a single slider check: the checker's square plus the squares between
	// it and the king. For a single non-slider checker it is just the
	// checker's square (capture only, no interposition).
	checkRay bitmap
}

func (b *Board) computeCheckInfo(s Side, kingSq Square) checkInfo {
	checkers := b.attackersTo(kingSq, s.Opposite())
	info := checkInfo{checkers: checkers, numCheckers: checkers.BitCount()}
	if info.numCheckers != 1 {
		return info
	}
	checkerSq := checkers.LS1B()
	_, checkerPiece := b.PieceAt(checkerSq)
	info.checkRay = maskCell[checkerSq]
	if checkerPiece == PieceBishop || checkerPiece == PieceRook || checkerPiece == PieceQueen {
		info.checkRay |= between[kingSq][checkerSq]
	}
	return info
}

// pinInfo maps each pinned square to the full ray (through the king) along
// which the pinned piece is still allowed to move.
type pinInfo map[Square]bitmap

// pinDirections are the 8 king-ray step vectors (dx, dy) and whether a
// slider moving that direction is diagonal (bishop/queen) or orthogonal
// (rook/queen).
var pinDirections = []struct {
	dx, dy   int
	diagonal bool
}{
	{1, 0, false}, {-1, 0, false}, {0, 1, false}, {0, -1, false},
	{1, 1, true}, {1, -1, true}, {-1, 1, true}, {-1, -1, true},
}

// computePins walks each of the 8 rays outward from the king square by
// square. A ray containing exactly one friendly piece followed (with
// nothing in between) by an enemy slider of matching kind pins that
// friendly piece to the ray's full line (including capturing the pinner).
func (b *Board) computePins(s Side, kingSq Square) pinInfo {
	pins := pinInfo{}
	kx, ky := int(kingSq%Width), int(kingSq/Width)
	for _, dir := range pinDirections {
		var firstSq Square
		foundFirst := false
		lineMask := maskCell[kingSq]
		x, y := kx+dir.dx, ky+dir.dy
		for x >= 0 && x < int(Width) && y >= 0 && y < int(Height) {
			sq := Square(y*int(Width) + x)
			lineMask |= maskCell[sq]
			if maskCell[sq]&b.occupied != 0 {
				if !foundFirst {
					if maskCell[sq]&b.sides[s] == 0 {
						break // first piece on the ray is an enemy: no pin
					}
					firstSq = sq
					foundFirst = true
				} else {
					_, p := b.PieceAt(sq)
					isSlider := p == PieceQueen || (dir.diagonal && p == PieceBishop) || (!dir.diagonal && p == PieceRook)
					if maskCell[sq]&b.sides[s.Opposite()] != 0 && isSlider {
						pins[firstSq] = lineMask
					}
					break
				}
			}
			x += dir.dx
			y += dir.dy
		}
	}
	return pins
}

// genValidDestination generates the bitmap of squares p (of side s, sitting
// on from) may pseudo-legally move to — not accounting for the mover's own
// king safety.
func (b *Board) genValidDestination(from Square, s Side, p Piece) bitmap {
	switch p {
	case PiecePawn:
		cell := maskCell[from]
		var maskEP bitmap
		if ep, ok := b.EnPassant(); ok {
			maskEP = maskCell[ep]
		}
		if s == SideWhite {
			moveN1 := shiftN(cell&^maskRow[7]) &^ b.occupied
			moveN2 := shiftN(moveN1&maskRow[2]) &^ b.occupied
			captures := maskPawnAttack[SideWhite][from] & (b.sides[SideBlack] | maskEP)
			return moveN1 | moveN2 | captures
		}
		moveS1 := shiftS(cell&^maskRow[0]) &^ b.occupied
		moveS2 := shiftS(moveS1&maskRow[5]) &^ b.occupied
		captures := maskPawnAttack[SideBlack][from] & (b.sides[SideWhite] | maskEP)
		return moveS1 | moveS2 | captures
	case PieceBishop:
		return hitDiagonals(from, b.occupied) &^ b.sides[s]
	case PieceKnight:
		return maskKnight[from] &^ b.sides[s]
	case PieceRook:
		return hitLaterals(from, b.occupied) &^ b.sides[s]
	case PieceQueen:
		return (hitDiagonals(from, b.occupied) | hitLaterals(from, b.occupied)) &^ b.sides[s]
	case PieceKing:
		return maskKing[from] &^ b.sides[s]
	default:
		return 0
	}
}
