package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/gambit/board"
)

var (
	lightSquare = color.New(color.FgHiBlack, color.BgHiWhite)
	darkSquare  = color.New(color.FgHiBlack, color.BgGreen)
	fileLabel   = color.New(color.Bold)
)

// drawBoard renders b as a colored 8x8 grid, a1 at the bottom-left, using
// the teacher's own checkerboard-cell layout with github.com/fatih/color
// standing in for its hand-rolled ANSI escapes.
func drawBoard(b *board.Board) string {
	var out strings.Builder
	for y := int(board.Height) - 1; y >= 0; y-- {
		fileLabel.Fprintf(&out, " %d ", y+1)
		for x := 0; x < int(board.Width); x++ {
			sq := board.Square(y*int(board.Width) + x)
			s, p := b.PieceAt(sq)
			sym := " "
			if p != board.PieceUnknown {
				sym = p.SymbolUnicode(s, false)
			}
			cell := fmt.Sprintf(" %s ", sym)
			if (x+y)%2 == 0 {
				darkSquare.Fprint(&out, cell)
			} else {
				lightSquare.Fprint(&out, cell)
			}
		}
		out.WriteString("\n")
	}
	out.WriteString("   ")
	for x := 0; x < int(board.Width); x++ {
		fileLabel.Fprintf(&out, " %s ", board.Square(x).NotationComponentX())
	}
	out.WriteString("\n")
	return out.String()
}

// dumpBoard renders b as a plain-ASCII grid, for piping to a non-terminal
// (log file, CI output) where ANSI color codes are unwelcome.
func dumpBoard(b *board.Board) string {
	var out strings.Builder
	out.WriteString("  +---+---+---+---+---+---+---+---+\n")
	for y := int(board.Height) - 1; y >= 0; y-- {
		fmt.Fprintf(&out, "%d |", y+1)
		for x := 0; x < int(board.Width); x++ {
			sq := board.Square(y*int(board.Width) + x)
			s, p := b.PieceAt(sq)
			sym := " "
			if p != board.PieceUnknown {
				sym = p.SymbolFEN(s)
			}
			fmt.Fprintf(&out, " %s |", sym)
		}
		out.WriteString("\n  +---+---+---+---+---+---+---+---+\n")
	}
	out.WriteString("   ")
	for x := 0; x < int(board.Width); x++ {
		fmt.Fprintf(&out, " %s  ", board.Square(x).NotationComponentX())
	}
	out.WriteString("\n")
	return out.String()
}
