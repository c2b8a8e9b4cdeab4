package engine

import (
	"testing"

	"github.com/daystram/gambit/board"
)

func TestScoreMovesRanksCapturesByMVVLVA(t *testing.T) {
	t.Parallel()
	// white queen and rook both attack a black queen on d5; MVV-LVA
	// should rank the rook's capture above the queen's.
	b, err := board.NewBoard(board.WithFEN("4k3/8/8/3q4/8/3R4/Q7/4K3 w - - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := NewEngine(EngineConfig{})
	mvs := b.GenerateLegalMoves(b.Turn())
	e.scoreMoves(b, mvs, board.Move{}, 0, false)
	for i := range mvs {
		sortMoves(mvs, i)
	}

	best := mvs[0]
	if !best.IsCapture {
		t.Fatalf("expected a capture to sort first, got %s", best)
	}
	if best.Piece != board.PieceRook {
		t.Errorf("expected the rook's capture (lower attacker value) to rank first, got %s", best)
	}
}

func TestKillerTableRecordsTwoDistinctMoves(t *testing.T) {
	t.Parallel()
	var k killerTable
	mv1 := board.Move{From: 12, To: 28}
	mv2 := board.Move{From: 13, To: 29}

	k.record(0, mv1)
	k.record(0, mv2)

	if !k[0][0].Equals(mv2) {
		t.Errorf("expected most recent killer in slot 0, got %s", k[0][0])
	}
	if !k[0][1].Equals(mv1) {
		t.Errorf("expected displaced killer in slot 1, got %s", k[0][1])
	}
}

func TestKillerTableIgnoresRepeatOfSameMove(t *testing.T) {
	t.Parallel()
	var k killerTable
	mv := board.Move{From: 12, To: 28}
	k.record(0, mv)
	k.record(0, mv)

	if !k[0][0].Equals(mv) {
		t.Errorf("expected killer unchanged, got %s", k[0][0])
	}
	if !k[0][1].IsNull() {
		t.Errorf("expected slot 1 to remain empty, got %s", k[0][1])
	}
}

func TestHistoryTableBonusGrowsWithDepth(t *testing.T) {
	t.Parallel()
	var h historyTable
	if h.bonus(1) <= h.bonus(0) {
		t.Errorf("expected bonus to grow with depth: bonus(0)=%d bonus(1)=%d", h.bonus(0), h.bonus(1))
	}
}

func TestHistoryTableRecordClampsToMax(t *testing.T) {
	t.Parallel()
	var h historyTable
	mv := board.Move{From: 12, To: 28}
	for i := 0; i < 1000; i++ {
		h.record(board.SideWhite, mv, MaxDepth)
	}
	if h[board.SideWhite][12][28] != historyMax {
		t.Errorf("expected history bonus clamped to %d, got %d", historyMax, h[board.SideWhite][12][28])
	}
}
