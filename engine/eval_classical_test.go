package engine

import (
	"testing"

	"github.com/daystram/gambit/board"
)

func TestClassicalEvaluatorSymmetricAtStartingPosition(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eval := NewClassicalEvaluator()
	if got := eval.Evaluate(b); got != tempoBonus {
		t.Errorf("expected the only asymmetry at the starting position to be White's tempo bonus, got %d", got)
	}
}

func TestClassicalEvaluatorRewardsMaterialAdvantage(t *testing.T) {
	t.Parallel()
	// white is up a rook.
	b, err := board.NewBoard(board.WithFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eval := NewClassicalEvaluator()
	if got := eval.Evaluate(b); got <= 0 {
		t.Errorf("expected a positive score for White's material edge, got %d", got)
	}
}

func TestClassicalEvaluatorRewardsBishopPair(t *testing.T) {
	t.Parallel()
	withPair, err := board.NewBoard(board.WithFEN("4k3/8/8/8/8/8/8/B2BK3 w - - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withOne, err := board.NewBoard(board.WithFEN("4k3/8/8/8/8/8/8/3BK3 w - - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eval := NewClassicalEvaluator()
	if eval.Evaluate(withPair)-eval.Evaluate(withOne) < bishopPairBonus {
		t.Errorf("expected the second bishop to add at least the bishop-pair bonus")
	}
}
