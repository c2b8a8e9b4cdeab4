package board

import "errors"

// ErrInvalidFEN is returned by UnmarshalFEN/NewBoard when the input does not
// meet the strict six-field FEN grammar.
var ErrInvalidFEN = errors.New("invalid fen")

// ErrIllegalMove names a move that is not present in the current
// position's legal-move set. No function in this module returns it; the
// uci front end rejects such moves without it. The search itself never
// produces an illegal move.
var ErrIllegalMove = errors.New("illegal move")

// Board is a mutable chess position: a little-endian rank-file bitboard per
// side and per piece kind, plus the scalar state (side to move, castling
// rights, en passant target, clocks) spec's Position type requires.
type Board struct {
	sides  map[Side]bitmap
	pieces map[Piece]bitmap

	occupied      bitmap
	enPassant     Square // flagNoEnpassant when unset
	castleRights  CastleRights
	halfMoveClock uint16
	fullMoveClock uint16
	turn          Side

	hash uint64
}

type boardConfig struct {
	fen string
}

// BoardOption configures NewBoard.
type BoardOption func(*boardConfig)

// WithFEN sets the starting position from a FEN string.
func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) { cfg.fen = fen }
}

// NewBoard constructs a Board, defaulting to the standard starting
// position.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{fen: DefaultStartingPositionFEN}
	for _, f := range opts {
		f(cfg)
	}
	b := newEmptyBoard()
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func newEmptyBoard() *Board {
	return &Board{
		sides:     map[Side]bitmap{SideWhite: 0, SideBlack: 0},
		pieces:    map[Piece]bitmap{PiecePawn: 0, PieceBishop: 0, PieceKnight: 0, PieceRook: 0, PieceQueen: 0, PieceKing: 0},
		enPassant: flagNoEnpassant,
	}
}

// Clone returns a deep-enough copy for the search to mutate independently:
// the bitboard maps are copied (their values, not shared references), and
// every scalar field is copied. This is the "cheap copy of the 64-square
// array plus scalars" spec's search relies on at every ply, instead of
// do/undo at search nodes.
func (b *Board) Clone() *Board {
	sides := make(map[Side]bitmap, 2)
	for s, m := range b.sides {
		sides[s] = m
	}
	pieces := make(map[Piece]bitmap, 6)
	for p, m := range b.pieces {
		pieces[p] = m
	}
	return &Board{
		sides:         sides,
		pieces:        pieces,
		occupied:      b.occupied,
		enPassant:     b.enPassant,
		castleRights:  b.castleRights,
		halfMoveClock: b.halfMoveClock,
		fullMoveClock: b.fullMoveClock,
		turn:          b.turn,
		hash:          b.hash,
	}
}

func (b *Board) Turn() Side                   { return b.turn }
func (b *Board) CastleRights() CastleRights    { return b.castleRights }
func (b *Board) HalfMoveClock() uint16         { return b.halfMoveClock }
func (b *Board) FullMoveClock() uint16         { return b.fullMoveClock }
func (b *Board) Hash() uint64                  { return b.hash }
func (b *Board) Occupied() bitmap              { return b.occupied }

// EnPassant returns the en passant target square and whether one is set.
func (b *Board) EnPassant() (Square, bool) {
	if b.enPassant == flagNoEnpassant {
		return 0, false
	}
	return b.enPassant, true
}

// GetBitmap returns the bitboard of a side's pieces of a given kind.
func (b *Board) GetBitmap(s Side, p Piece) bitmap {
	return b.sides[s] & b.pieces[p]
}

// PieceAt returns the side and kind of the occupant of sq, or
// (SideUnknown, PieceUnknown) if empty.
func (b *Board) PieceAt(sq Square) (Side, Piece) {
	if maskCell[sq]&b.occupied == 0 {
		return SideUnknown, PieceUnknown
	}
	s := SideWhite
	if maskCell[sq]&b.sides[SideBlack] != 0 {
		s = SideBlack
	}
	for p, pBM := range b.pieces {
		if maskCell[sq]&pBM != 0 {
			return s, p
		}
	}
	return SideUnknown, PieceUnknown
}

// MaterialBalance returns each side's summed material value in centipawns.
func (b *Board) MaterialBalance() (white, black int32) {
	for p, bm := range b.pieces {
		v := p.Value()
		white += int32((bm & b.sides[SideWhite]).BitCount()) * v
		black += int32((bm & b.sides[SideBlack]).BitCount()) * v
	}
	return white, black
}

// set toggles a single square in both the side and piece bitboards (and the
// occupancy union), without touching the Zobrist hash. Callers that need
// hash consistency must XOR the corresponding zobristConstantPiece term
// themselves.
func (b *Board) set(s Side, p Piece, sq Square, value bool) {
	if value {
		b.sides[s] |= maskCell[sq]
		b.pieces[p] |= maskCell[sq]
		b.occupied |= maskCell[sq]
	} else {
		b.sides[s] &^= maskCell[sq]
		b.pieces[p] &^= maskCell[sq]
		b.occupied &^= maskCell[sq]
	}
}
