package board

import "testing"

func applyAndCheckHash(t *testing.T, b *Board, mv Move) {
	t.Helper()
	b.Apply(mv)
	if got, want := b.Hash(), ComputeKey(b); got != want {
		t.Errorf("hash drifted after applying %s: got=%d want=%d", mv, got, want)
	}
}

func TestApplyNormalMove(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv := Move{IsTurn: SideWhite, Piece: PiecePawn, From: E2, To: E4}
	applyAndCheckHash(t, b, mv)

	if b.Turn() != SideBlack {
		t.Errorf("expected turn to flip to black, got %v", b.Turn())
	}
	if _, p := b.PieceAt(E2); p != PieceUnknown {
		t.Error("expected e2 to be vacated")
	}
	if s, p := b.PieceAt(E4); s != SideWhite || p != PiecePawn {
		t.Error("expected white pawn on e4")
	}
	ep, ok := b.EnPassant()
	if !ok || ep != E3 {
		t.Errorf("expected en passant target e3, got %v (ok=%v)", ep, ok)
	}
	if b.HalfMoveClock() != 0 {
		t.Errorf("pawn push should reset half-move clock, got %d", b.HalfMoveClock())
	}
}

func TestApplyCaptureResetsHalfMoveClock(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("r3k3/8/8/8/8/8/8/R3K3 w - - 7 10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv := Move{IsTurn: SideWhite, Piece: PieceRook, From: A1, To: A8, IsCapture: true}
	applyAndCheckHash(t, b, mv)
	if b.HalfMoveClock() != 0 {
		t.Errorf("capture should reset the half-move clock, got %d", b.HalfMoveClock())
	}
}

func TestApplyQuietMoveAdvancesHalfMoveClock(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("r3k3/8/8/8/8/8/8/R3K3 w - - 7 10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv := Move{IsTurn: SideWhite, Piece: PieceRook, From: A1, To: B1}
	applyAndCheckHash(t, b, mv)
	if b.HalfMoveClock() != 8 {
		t.Errorf("quiet non-pawn move should advance the clock, got %d", b.HalfMoveClock())
	}
}

func TestApplyEnPassant(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv := Move{IsTurn: SideWhite, Piece: PiecePawn, From: E5, To: D6, IsEnPassant: true, IsCapture: true}
	applyAndCheckHash(t, b, mv)

	if _, p := b.PieceAt(D5); p != PieceUnknown {
		t.Error("expected captured pawn on d5 to be removed")
	}
	if s, p := b.PieceAt(D6); s != SideWhite || p != PiecePawn {
		t.Error("expected capturing pawn to land on d6")
	}
	if _, ok := b.EnPassant(); ok {
		t.Error("expected en passant target to clear after the capture")
	}
}

func TestApplyCastleMovesRookToo(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv := Move{IsTurn: SideWhite, Piece: PieceKing, IsCastle: CastleDirectionWhiteRight}
	applyAndCheckHash(t, b, mv)

	if s, p := b.PieceAt(G1); s != SideWhite || p != PieceKing {
		t.Error("expected king on g1")
	}
	if s, p := b.PieceAt(F1); s != SideWhite || p != PieceRook {
		t.Error("expected rook on f1")
	}
	if b.CastleRights().IsAllowed(CastleDirectionWhiteRight) || b.CastleRights().IsAllowed(CastleDirectionWhiteLeft) {
		t.Error("expected both white castle rights to be revoked")
	}
	if !b.CastleRights().IsAllowed(CastleDirectionBlackRight) {
		t.Error("black rights should be untouched")
	}
}

func TestApplyRookMoveRevokesSingleRight(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv := Move{IsTurn: SideWhite, Piece: PieceRook, From: H1, To: H4}
	applyAndCheckHash(t, b, mv)

	if b.CastleRights().IsAllowed(CastleDirectionWhiteRight) {
		t.Error("expected kingside right to be revoked when the rook moves")
	}
	if !b.CastleRights().IsAllowed(CastleDirectionWhiteLeft) {
		t.Error("queenside right should be unaffected")
	}
}

func TestApplyPromotion(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("8/P6k/8/8/8/8/7p/K7 w - - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv := Move{IsTurn: SideWhite, Piece: PiecePawn, From: A7, To: A8, IsPromote: PieceQueen}
	applyAndCheckHash(t, b, mv)

	if s, p := b.PieceAt(A8); s != SideWhite || p != PieceQueen {
		t.Error("expected promoted queen on a8")
	}
}

func TestApplyNullMoveFlipsTurnOnly(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := b.Clone()
	b.ApplyNullMove()
	if b.Turn() == before.Turn() {
		t.Error("expected turn to flip")
	}
	if b.Occupied() != before.Occupied() {
		t.Error("null move must not change piece placement")
	}
	if got, want := b.Hash(), ComputeKey(b); got != want {
		t.Errorf("hash drifted after null move: got=%d want=%d", got, want)
	}
}
