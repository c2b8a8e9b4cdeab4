package board

import "testing"

func TestIsInsufficientMaterial(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{name: "king vs king", fen: "8/8/4k3/8/8/4K3/8/8 w - - 0 1", want: true},
		{name: "king+knight vs king", fen: "8/8/4k3/8/8/4K3/5N2/8 w - - 0 1", want: true},
		{name: "king+bishop vs king+bishop same color", fen: "8/8/4k2b/8/4K2B/8/8/8 w - - 0 1", want: true},
		{name: "king+bishop vs king+bishop opposite color", fen: "8/8/4k2b/8/8/4KB2/8/8 w - - 0 1", want: false},
		{name: "king+two knights vs king", fen: "8/8/4k3/8/8/4K3/5NN1/8 w - - 0 1", want: true},
		{name: "king+rook vs king is sufficient", fen: "8/8/4k3/8/8/4K3/5R2/8 w - - 0 1", want: false},
		{name: "king+pawn vs king is sufficient", fen: "8/8/4k3/8/8/4K3/5P2/8 w - - 0 1", want: false},
		{name: "two minors each side is sufficient", fen: "8/8/3kbb2/8/8/3KNN2/8/8 w - - 0 1", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard(WithFEN(tt.fen))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := b.IsInsufficientMaterial(); got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestIsFiftyMoveDraw(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("4k3/8/8/8/8/8/8/4K3 w - - 99 50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.IsFiftyMoveDraw() {
		t.Error("99 half-moves should not yet be a draw")
	}
	b.Apply(Move{IsTurn: SideWhite, Piece: PieceKing, From: E1, To: D1})
	if !b.IsFiftyMoveDraw() {
		t.Error("100 half-moves should be a draw")
	}
}
