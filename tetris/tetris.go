// Package tetris contains the logic of the game: the board, the tetromino
// catalog, the falling piece, line clears, the gravity ticker and the session
// that ties them together. It does no I/O; hosts feed it time and input and
// render what Read() returns.
package tetris

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Width  = 10
	Height = 24
)

var ErrOutOfBounds = errors.New("cell out of bounds")

// Color is the content of a board cell. Empty is the only unoccupied state.
type Color uint8

const (
	Empty Color = iota
	LightBlue
	Blue
	Orange
	Yellow
	Lime
	Purple
	Red
)

var colorNames = [...]string{"empty", "lightblue", "blue", "orange", "yellow", "lime", "purple", "red"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", c)
}

// Grid is the playfield, indexed [x][y].
// Columns are 0 > 9 left to right and represent the X axis.
// Rows are 0 > 23 bottom to top and represent the Y axis.
type Grid [Width][Height]Color

// Row returns the colors of row y left to right.
func (g *Grid) Row(y int) [Width]Color {
	var row [Width]Color
	for x := range Width {
		row[x] = g[x][y]
	}
	return row
}

func (g *Grid) full(y int) bool {
	for x := range Width {
		if g[x][y] == Empty {
			return false
		}
	}
	return true
}

// String dumps the grid top row first, one char per cell.
func (g Grid) String() string {
	var sb strings.Builder
	for y := Height - 1; y >= 0; y-- {
		for x := range Width {
			if g[x][y] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('X')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Board owns the cell state of a session. Every mutation of the grid goes
// through it.
type Board struct {
	grid Grid
}

func NewBoard() *Board {
	return &Board{}
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func (b *Board) Cell(x, y int) (Color, error) {
	if !inBounds(x, y) {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	return b.grid[x][y], nil
}

func (b *Board) SetCell(x, y int, c Color) error {
	if !inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	b.grid[x][y] = c
	return nil
}

// Occupied reports whether (x, y) holds a block. Out of bounds cells are
// reported as occupied.
func (b *Board) Occupied(x, y int) bool {
	c, err := b.Cell(x, y)
	return err != nil || c != Empty
}

// Snapshot returns a copy of the grid.
func (b *Board) Snapshot() Grid {
	return b.grid
}

// paint is used by the piece controller and the line clear engine, which
// only ever address cells they already validated.
func (b *Board) paint(x, y int, c Color) {
	if err := b.SetCell(x, y, c); err != nil {
		panic(err)
	}
}
