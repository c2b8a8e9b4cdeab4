package board

import (
	"fmt"
	"math/bits"
	"strings"
)

func shiftNW(bm bitmap) bitmap { return bm << 7 }
func shiftN(bm bitmap) bitmap  { return bm << 8 }
func shiftNE(bm bitmap) bitmap { return bm << 9 }
func shiftE(bm bitmap) bitmap  { return bm << 1 }
func shiftSE(bm bitmap) bitmap { return bm >> 7 }
func shiftS(bm bitmap) bitmap  { return bm >> 8 }
func shiftSW(bm bitmap) bitmap { return bm >> 9 }
func shiftW(bm bitmap) bitmap  { return bm >> 1 }

// hitDiagonals returns the sliding attack set of a diagonal-moving piece
// standing on pos, given the current occupancy.
func hitDiagonals(pos Square, occupied bitmap) bitmap {
	return scanHit(maskCell[pos], occupied, maskDia[pos]) | scanHit(maskCell[pos], occupied, maskADia[pos])
}

// hitLaterals returns the sliding attack set of an orthogonal-moving piece
// standing on pos, given the current occupancy.
func hitLaterals(pos Square, occupied bitmap) bitmap {
	return scanHit(maskCell[pos], occupied, maskCol[pos.X()]) | scanHit(maskCell[pos], occupied, maskRow[pos.Y()])
}

// scanHit uses the o^(o-2*r) classical sliding-attack trick to compute the
// attack set of a slider on cell along the given ray mask.
func scanHit(cell, occupied, mask bitmap) bitmap {
	blocker := occupied & mask
	return ((blocker - 2*cell) ^ reverse(reverse(blocker)-2*reverse(cell))) & mask
}

func (bm bitmap) LS1B() Square {
	return Square(bits.TrailingZeros64(uint64(bm)))
}

func (bm bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// popLS1B returns the least-significant set square and the bitmap with that
// bit cleared.
func (bm bitmap) popLS1B() (Square, bitmap) {
	sq := bm.LS1B()
	return sq, bm &^ (bitmap(1) << sq)
}

func (bm bitmap) Dump() string {
	builder := strings.Builder{}
	for y := Square(Height); y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := Square(0); x < Width; x++ {
			if bm&maskCell[(y-1)*Height+x] != 0 {
				_, _ = builder.WriteString(" # ")
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	return builder.String()
}
