package main

import (
	"fmt"

	"github.com/kpitt/polyomino/internal/game"
	"github.com/kpitt/polyomino/internal/geom"
)

// printBoard renders decoded (one piece index per board cell, in board
// scan order) as a grid, coloring each cell by its assigned piece.
func printBoard(g *game.Game, decoded []int) {
	box := g.Board.BBox()
	for y := int32(0); y < box.Height; y++ {
		for x := int32(0); x < box.Width; x++ {
			idx, ok := g.Board.CellIndex(geom.New(x, y))
			if !ok {
				fmt.Print("   ")
				continue
			}
			pieceIdx := decoded[idx]
			printCell(pieceIdx)
		}
		fmt.Println()
	}
}

func printCell(pieceIdx int) {
	if pieceIdx < 0 {
		fmt.Print(" . ")
		return
	}
	c := pieceColors[pieceIdx%len(pieceColors)]
	c.Printf(" %X ", pieceIdx%16)
}
