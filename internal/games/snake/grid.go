package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Cell is a position on the board. Equality is structural.
type Cell struct {
	X, Y int
}

// Step returns the cell one unit away in direction d, without wrapping.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid is a fixed-size board whose opposite edges are joined (a torus).
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid of the given size.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Wrap maps any cell onto the board, so leaving one edge re-enters on the opposite one.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: core.Mod(c.X, g.Width), Y: core.Mod(c.Y, g.Height)}
}

// Contains reports whether the cell lies on the board without wrapping.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the middle cell (rounded down).
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}
