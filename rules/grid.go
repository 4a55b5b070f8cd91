package rules

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a cell outside the allocated grid is read or
// written. It means the caller computed a bad position.
var ErrOutOfBounds = errors.New("rules: position out of bounds")

// Cell is the content of a single grid square.
type Cell int

// Possible cell values.
const (
	Empty Cell = iota
	Wall
	Food
	SnakeBody
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Food:
		return "food"
	case SnakeBody:
		return "snake"
	}
	return fmt.Sprintf("cell(%d)", int(c))
}

// overlayMargin is the number of rows and columns allocated past the border
// ring. They are reserved for HUD text and are never collidable.
const overlayMargin = 2

// Grid is the playing field. The playable interior is [1, width] x [1, height],
// surrounded by a ring of walls.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid allocates a grid for a width x height playfield and resets it.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([][]Cell, height+2+overlayMargin),
	}
	for y := range g.cells {
		g.cells[y] = make([]Cell, width+2+overlayMargin)
	}
	g.Reset()
	return g
}

// Reset empties every cell and rebuilds the border ring.
func (g *Grid) Reset() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Empty
		}
	}

	for x := 0; x <= g.width+1; x++ {
		g.cells[0][x] = Wall
		g.cells[g.height+1][x] = Wall
	}
	for y := 0; y <= g.height+1; y++ {
		g.cells[y][0] = Wall
		g.cells[y][g.width+1] = Wall
	}
}

// Width is the playable width.
func (g *Grid) Width() int { return g.width }

// Height is the playable height.
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return y >= 0 && y < len(g.cells) && x >= 0 && x < len(g.cells[y])
}

// Get returns the cell at x, y.
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.inBounds(x, y) {
		return Empty, ErrOutOfBounds
	}
	return g.cells[y][x], nil
}

// Set writes the cell at x, y.
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.inBounds(x, y) {
		return ErrOutOfBounds
	}
	g.cells[y][x] = c
	return nil
}

// At is Get for a Position.
func (g *Grid) At(p Position) (Cell, error) { return g.Get(p.X, p.Y) }

// Put is Set for a Position.
func (g *Grid) Put(p Position, c Cell) error { return g.Set(p.X, p.Y, c) }

// Count returns how many cells inside the playable interior hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for y := 1; y <= g.height; y++ {
		for x := 1; x <= g.width; x++ {
			if g.cells[y][x] == c {
				n++
			}
		}
	}
	return n
}

// IsCorner reports whether x, y is one of the four corners of the border ring.
func (g *Grid) IsCorner(x, y int) bool {
	return (x == 0 || x == g.width+1) && (y == 0 || y == g.height+1)
}
