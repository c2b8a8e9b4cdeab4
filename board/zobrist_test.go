package board

import "testing"

func TestComputeKeyMatchesIncrementalHash(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, uci := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		var found Move
		ok := false
		for _, mv := range b.GenerateLegalMoves(b.Turn()) {
			if mv.UCI() == uci {
				found, ok = mv, true
				break
			}
		}
		if !ok {
			t.Fatalf("move %s not found among legal moves", uci)
		}
		b.Apply(found)
		if got, want := b.Hash(), ComputeKey(b); got != want {
			t.Fatalf("hash drifted after %s: got=%d want=%d", uci, got, want)
		}
	}
}

func TestEnPassantHashNeutrality(t *testing.T) {
	t.Parallel()
	// no pawns anywhere near e6: the target square is set but no pawn can
	// ever capture onto it, so it must not perturb the hash.
	dead, err := NewBoard(WithFEN("4k3/8/8/8/8/8/8/4K3 w - e6 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clean, err := NewBoard(WithFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dead.Hash() != clean.Hash() {
		t.Errorf("dead en passant target should not affect the hash: got=%d want=%d", dead.Hash(), clean.Hash())
	}

	// e5 can actually capture onto d6 here, so the target is live and must
	// change the hash relative to the same position without it.
	live, err := NewBoard(WithFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	liveClean, err := NewBoard(WithFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if live.Hash() == liveClean.Hash() {
		t.Error("live en passant target should affect the hash")
	}
}

func TestIsAttackedBySlider(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("8/8/8/3r4/8/8/8/3K4 w - - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.IsAttacked(D1, SideBlack) {
		t.Error("expected d1 to be attacked by the rook on d5")
	}
	if b.IsAttacked(E1, SideBlack) {
		t.Error("did not expect e1 to be attacked")
	}
}
