package board

import (
	"math/bits"
	"math/rand"

	"github.com/daystram/gambit/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Square is a board square in little-endian rank-file order: a1=0, b1=1,
// ..., h1=7, a2=8, ..., h8=63.
type Square = position.Pos

// bitmap is a 64-bit set of squares, one bit per Square.
type bitmap uint64

// Named squares used by castling and test fixtures.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const flagNoEnpassant Square = -1

var (
	maskCol = [Width]bitmap{
		0x_01_01_01_01_01_01_01_01,
		0x_02_02_02_02_02_02_02_02,
		0x_04_04_04_04_04_04_04_04,
		0x_08_08_08_08_08_08_08_08,
		0x_10_10_10_10_10_10_10_10,
		0x_20_20_20_20_20_20_20_20,
		0x_40_40_40_40_40_40_40_40,
		0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]bitmap{
		0x_00_00_00_00_00_00_00_FF,
		0x_00_00_00_00_00_00_FF_00,
		0x_00_00_00_00_00_FF_00_00,
		0x_00_00_00_00_FF_00_00_00,
		0x_00_00_00_FF_00_00_00_00,
		0x_00_00_FF_00_00_00_00_00,
		0x_00_FF_00_00_00_00_00_00,
		0x_FF_00_00_00_00_00_00_00,
	}

	maskCell   [TotalCells]bitmap
	maskDia    [TotalCells]bitmap
	maskADia   [TotalCells]bitmap
	maskKnight [TotalCells]bitmap
	maskKing   [TotalCells]bitmap

	// maskPawnAttack[s][sq] is the set of squares a side-s pawn standing on
	// sq attacks.
	maskPawnAttack [2 + 1][TotalCells]bitmap

	// between[from][to] holds the squares strictly between from and to when
	// they share a rank, file, or diagonal; zero otherwise. Used both for
	// the interposition squares of a check and the castling king path.
	between [TotalCells][TotalCells]bitmap

	maskCastling = [4 + 1]bitmap{}
	posCastling  = [4 + 1][6 + 1][2]Square{
		CastleDirectionWhiteRight: {
			PieceKing: {E1, G1},
			PieceRook: {H1, F1},
		},
		CastleDirectionWhiteLeft: {
			PieceKing: {E1, C1},
			PieceRook: {A1, D1},
		},
		CastleDirectionBlackRight: {
			PieceKing: {E8, G8},
			PieceRook: {H8, F8},
		},
		CastleDirectionBlackLeft: {
			PieceKing: {E8, C8},
			PieceRook: {A8, D8},
		},
	}

	// zobristConstantPiece is indexed [Side][Piece][Square].
	zobristConstantPiece        [2 + 1][6 + 1][TotalCells]uint64
	zobristConstantEnPassant    [Width]uint64
	zobristConstantCastleRights [16]uint64
	zobristConstantSideWhite    uint64
)

func init() {
	initMask()
	initZobrist()
}

func initMask() {
	for pos := Square(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}

	for pos := Square(0); pos < TotalCells; pos++ {
		mask := bitmap(0)
		x, y := int(pos%Width), int(pos/Width)
		x, y = x-min(x, y), y-min(x, y)
		for x < int(Width) && y < int(Height) {
			mask |= bitmap(1) << (y*int(Width) + x)
			x++
			y++
		}
		maskDia[pos] = mask
	}

	for pos := Square(0); pos < TotalCells; pos++ {
		mask := bitmap(0)
		x, y := int(pos%Width), int(pos/Width)
		x, y = x-min(x, int(Height)-y-1), y+min(x, int(Height)-y-1)
		for x < int(Width) && y >= 0 {
			mask |= bitmap(1) << (y*int(Width) + x)
			x++
			y--
		}
		maskADia[pos] = mask
	}

	for pos := Square(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := bitmap(0)
		mask |= shiftN(shiftN(shiftE(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[7])))
		mask |= shiftN(shiftN(shiftW(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[0])))
		mask |= shiftS(shiftS(shiftE(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[7])))
		mask |= shiftS(shiftS(shiftW(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[0])))
		mask |= shiftE(shiftE(shiftN(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[7])))
		mask |= shiftE(shiftE(shiftS(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[0])))
		mask |= shiftW(shiftW(shiftN(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[7])))
		mask |= shiftW(shiftW(shiftS(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[0])))
		maskKnight[pos] = mask
	}

	for pos := Square(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := bitmap(0)
		mask |= shiftN(cell &^ maskRow[7])
		mask |= shiftNE(cell &^ maskRow[7] &^ maskCol[7])
		mask |= shiftE(cell &^ maskCol[7])
		mask |= shiftSE(cell &^ maskRow[0] &^ maskCol[7])
		mask |= shiftS(cell &^ maskRow[0])
		mask |= shiftSW(cell &^ maskRow[0] &^ maskCol[0])
		mask |= shiftW(cell &^ maskCol[0])
		mask |= shiftNW(cell &^ maskRow[7] &^ maskCol[0])
		maskKing[pos] = mask
	}

	for pos := Square(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		maskPawnAttack[SideWhite][pos] = shiftNW(cell&^maskCol[0]) | shiftNE(cell&^maskCol[7])
		maskPawnAttack[SideBlack][pos] = shiftSW(cell&^maskCol[0]) | shiftSE(cell&^maskCol[7])
	}

	initBetween()

	maskCastling = [5]bitmap{
		CastleDirectionWhiteRight: maskRow[0] & (maskCol[5] | maskCol[6]),
		CastleDirectionWhiteLeft:  maskRow[0] & (maskCol[1] | maskCol[2] | maskCol[3]),
		CastleDirectionBlackRight: maskRow[7] & (maskCol[5] | maskCol[6]),
		CastleDirectionBlackLeft:  maskRow[7] & (maskCol[1] | maskCol[2] | maskCol[3]),
	}
}

// initBetween fills the between table by ray-walking from every square in
// all 8 directions.
func initBetween() {
	dirs := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for from := Square(0); from < TotalCells; from++ {
		fx, fy := int(from%Width), int(from/Width)
		for _, d := range dirs {
			var walked bitmap
			x, y := fx+d[0], fy+d[1]
			for x >= 0 && x < int(Width) && y >= 0 && y < int(Height) {
				to := Square(y*int(Width) + x)
				between[from][to] = walked
				walked |= maskCell[to]
				x += d[0]
				y += d[1]
			}
		}
	}
}

func initZobrist() {
	r := rand.New(rand.NewSource(7))
	for _, s := range []Side{SideWhite, SideBlack} {
		for _, p := range []Piece{PiecePawn, PieceBishop, PieceKnight, PieceRook, PieceQueen, PieceKing} {
			for pos := Square(0); pos < TotalCells; pos++ {
				zobristConstantPiece[s][p][pos] = r.Uint64()
			}
		}
	}
	for f := Square(0); f < Width; f++ {
		zobristConstantEnPassant[f] = r.Uint64()
	}
	for i := range zobristConstantCastleRights {
		zobristConstantCastleRights[i] = r.Uint64()
	}
	zobristConstantSideWhite = r.Uint64()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func reverse(bm bitmap) bitmap {
	return bitmap(bits.Reverse64(uint64(bm)))
}
