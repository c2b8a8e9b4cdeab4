package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/gambit/position"
)

var fenPieceSymbol = map[rune]struct {
	s Side
	p Piece
}{
	'P': {SideWhite, PiecePawn}, 'N': {SideWhite, PieceKnight}, 'B': {SideWhite, PieceBishop},
	'R': {SideWhite, PieceRook}, 'Q': {SideWhite, PieceQueen}, 'K': {SideWhite, PieceKing},
	'p': {SideBlack, PiecePawn}, 'n': {SideBlack, PieceKnight}, 'b': {SideBlack, PieceBishop},
	'r': {SideBlack, PieceRook}, 'q': {SideBlack, PieceQueen}, 'k': {SideBlack, PieceKing},
}

// UnmarshalFEN parses the strict six-field FEN grammar into b, overwriting
// every field b holds. b must already be zero-valued (newEmptyBoard).
func UnmarshalFEN(fen string, b *Board) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFEN, len(fields))
	}
	placement, turn, castling, enPassant, halfMove, fullMove := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	if err := unmarshalPlacement(placement, b); err != nil {
		return err
	}

	switch turn {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, turn)
	}

	if err := unmarshalCastling(castling, b); err != nil {
		return err
	}

	if enPassant == "-" {
		b.enPassant = flagNoEnpassant
	} else {
		sq, err := position.NewPosFromNotation(enPassant)
		if err != nil {
			return fmt.Errorf("%w: bad en passant square %q", ErrInvalidFEN, enPassant)
		}
		b.enPassant = sq
	}

	half, err := strconv.ParseUint(halfMove, 10, 16)
	if err != nil {
		return fmt.Errorf("%w: bad half-move clock %q", ErrInvalidFEN, halfMove)
	}
	b.halfMoveClock = uint16(half)

	full, err := strconv.ParseUint(fullMove, 10, 16)
	if err != nil {
		return fmt.Errorf("%w: bad full-move clock %q", ErrInvalidFEN, fullMove)
	}
	b.fullMoveClock = uint16(full)

	b.rehash()
	return nil
}

func unmarshalPlacement(placement string, b *Board) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != int(Height) {
		return fmt.Errorf("%w: expected %d ranks, got %d", ErrInvalidFEN, Height, len(ranks))
	}
	for i, rank := range ranks {
		y := int(Height) - 1 - i
		x := 0
		for _, r := range rank {
			switch {
			case r >= '1' && r <= '8':
				x += int(r - '0')
			default:
				ent, ok := fenPieceSymbol[r]
				if !ok {
					return fmt.Errorf("%w: bad placement symbol %q", ErrInvalidFEN, r)
				}
				if x >= int(Width) {
					return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, i)
				}
				sq := Square(y*int(Width) + x)
				b.set(ent.s, ent.p, sq, true)
				x++
			}
		}
		if x != int(Width) {
			return fmt.Errorf("%w: rank %d does not sum to %d files", ErrInvalidFEN, i, Width)
		}
	}
	return nil
}

func unmarshalCastling(castling string, b *Board) error {
	if castling == "-" {
		return nil
	}
	for _, r := range castling {
		switch r {
		case 'K':
			b.castleRights.Set(CastleDirectionWhiteRight, true)
		case 'Q':
			b.castleRights.Set(CastleDirectionWhiteLeft, true)
		case 'k':
			b.castleRights.Set(CastleDirectionBlackRight, true)
		case 'q':
			b.castleRights.Set(CastleDirectionBlackLeft, true)
		default:
			return fmt.Errorf("%w: bad castling symbol %q", ErrInvalidFEN, r)
		}
	}
	return nil
}

// MarshalFEN renders b back into the strict six-field FEN grammar.
func MarshalFEN(b *Board) string {
	var sb strings.Builder
	for i := 0; i < int(Height); i++ {
		y := int(Height) - 1 - i
		run := 0
		for x := 0; x < int(Width); x++ {
			sq := Square(y*int(Width) + x)
			s, p := b.PieceAt(sq)
			if p == PieceUnknown {
				run++
				continue
			}
			if run > 0 {
				sb.WriteString(strconv.Itoa(run))
				run = 0
			}
			sb.WriteString(p.SymbolFEN(s))
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
		}
		if i != int(Height)-1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.turn == SideWhite {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := ""
	if b.castleRights.IsAllowed(CastleDirectionWhiteRight) {
		castling += "K"
	}
	if b.castleRights.IsAllowed(CastleDirectionWhiteLeft) {
		castling += "Q"
	}
	if b.castleRights.IsAllowed(CastleDirectionBlackRight) {
		castling += "k"
	}
	if b.castleRights.IsAllowed(CastleDirectionBlackLeft) {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	if ep, ok := b.EnPassant(); ok {
		sb.WriteString(ep.Notation())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(b.halfMoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(b.fullMoveClock), 10))

	return sb.String()
}
