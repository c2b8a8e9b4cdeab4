package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/gambit/board"
)

// Perft runs a move-generator correctness count from fen to depth, reporting
// node/capture/en-passant/castle/promotion/check totals to out. It exists to
// exercise GenerateLegalMoves against the well-known chessprogramming.org
// perft corpus, independent of the search engine.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	var nodes, cap, enp, cas, pro, chk uint64
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, depth, true, verbose, out, &nodes, &cap, &enp, &cas, &pro, &chk)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/end.Sub(start).Seconds()), cap, enp, cas, pro, chk, end.Sub(start).Seconds())

	return nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, nodes, cap, enp, cas, pro, chk *uint64) uint64

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, nodes, cap, enp, cas, pro, chk *uint64) uint64 {
	if d == 0 {
		*nodes++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateLegalMoves(b.Turn()) {
		bb := b.Clone()
		bb.Apply(mv)
		var child uint64
		if d != 1 {
			child = runPerft(bb, d-1, false, verbose, out, nodes, cap, enp, cas, pro, chk)
		} else {
			*nodes++
			child = 1
			if mv.IsCapture {
				*cap++
			}
			if mv.IsEnPassant {
				*enp++
			}
			if mv.IsCastle != board.CastleDirectionUnknown {
				*cas++
			}
			if mv.IsPromote != board.PieceUnknown {
				*pro++
			}
			if bb.IsKingChecked(bb.Turn()) {
				*chk++
			}
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, nodes, cap, enp, cas, pro, chk *uint64) uint64 {
	if d == 0 {
		atomic.AddUint64(nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateLegalMoves(b.Turn()) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb := b.Clone()
			bb.Apply(mv)
			var child uint64
			if d != 1 {
				child = runPerftParallel(bb, d-1, false, verbose, out, nodes, cap, enp, cas, pro, chk)
			} else {
				atomic.AddUint64(nodes, 1)
				child = 1
				if mv.IsCapture {
					atomic.AddUint64(cap, 1)
				}
				if mv.IsEnPassant {
					atomic.AddUint64(enp, 1)
				}
				if mv.IsCastle != board.CastleDirectionUnknown {
					atomic.AddUint64(cas, 1)
				}
				if mv.IsPromote != board.PieceUnknown {
					atomic.AddUint64(pro, 1)
				}
				if bb.IsKingChecked(bb.Turn()) {
					atomic.AddUint64(chk, 1)
				}
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
