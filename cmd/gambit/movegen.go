package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/gambit/board"
)

func movegen(fen string, draw bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(dumpBoard(b))
	fmt.Println(drawBoard(b))
	fmt.Println(b.State())
	dumpMoves(b)

	if draw {
		for _, mv := range b.GenerateLegalMoves(b.Turn()) {
			bb := b.Clone()
			bb.Apply(mv)
			fmt.Println(mv)
			fmt.Println(drawBoard(bb))
			fmt.Println(board.MarshalFEN(bb))
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GenerateLegalMoves(b.Turn())
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v) (cas=%s) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.IsTurn, mv.Piece, mv.From, mv.To, mv.IsCapture, mv.IsEnPassant, mv.IsCastle, mv.IsPromote)
	}
}
