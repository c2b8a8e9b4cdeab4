package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/gambit/bench"
	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/uci"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	stepRun = flag.Bool("step", false, "run step mode")

	searchRun      = flag.Bool("search", false, "run search mode")
	searchMaxDepth = flag.Int("search.maxdepth", 6, "search max depth in search mode")
	searchTimeout  = flag.Int("search.timeout", 5, "search timeout in seconds in search mode")

	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 5, "perft depth")
	perftParallel = flag.Bool("perft.parallel", false, "parallelize perft across root moves")
	perftVerbose  = flag.Bool("perft.verbose", false, "print per-root-move node counts")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen, *movegenDraw)
	}
	if *stepRun {
		return step(fen)
	}
	if *searchRun {
		return search(fen, *searchMaxDepth, *searchTimeout)
	}
	if *perftRun {
		return perft(fen, *perftDepth, *perftParallel, *perftVerbose)
	}

	return runUCI()
}

// perft drives bench.Perft, the shared correctness-counting tool also
// wired into uci's "go perft" subcommand, printing each reported line as
// it arrives.
func perft(fen string, depth int, parallel, verbose bool) error {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		for s := range out {
			log.Println(s)
		}
		close(done)
	}()
	err := bench.Perft(depth, fen, parallel, verbose, out)
	close(out)
	<-done
	return err
}

// runUCI is the default mode: a UCI engine loop over stdin/stdout.
func runUCI() error {
	return uci.NewInterface().Run()
}

