// Package viewport maps the board grid onto a window: the board keeps its
// Width:Height ratio, fills the window height and the two sidebars share
// what is left of the width.
package viewport

import "tetrisim/tetris"

// Rect is an area of the window in pixels, origin at the top left.
type Rect struct {
	X, Y, W, H float32
}

// Geometry of the board and sidebars for one window size.
type Geometry struct {
	Board Rect
	Left  Rect
	Right Rect
	// Cell is the side of a single board cell.
	Cell float32
}

// Fit lays out a window of w by h pixels. When the window is too narrow for
// the board at full height, the board takes the whole width instead and is
// centered vertically.
func Fit(w, h int) Geometry {
	fw, fh := float32(w), float32(h)
	if fw <= 0 || fh <= 0 {
		return Geometry{}
	}
	bw := fh * tetris.Width / tetris.Height
	bh := fh
	if bw > fw {
		bw = fw
		bh = fw * tetris.Height / tetris.Width
	}
	side := (fw - bw) / 2
	top := (fh - bh) / 2
	return Geometry{
		Board: Rect{X: side, Y: top, W: bw, H: bh},
		Left:  Rect{X: 0, Y: 0, W: side, H: fh},
		Right: Rect{X: side + bw, Y: 0, W: side, H: fh},
		Cell:  bw / tetris.Width,
	}
}

// CellRect is the area of board cell (x, y). Board rows count upwards so
// row 0 is drawn at the bottom of the board.
func (g Geometry) CellRect(x, y int) Rect {
	return Rect{
		X: g.Board.X + float32(x)*g.Cell,
		Y: g.Board.Y + float32(tetris.Height-1-y)*g.Cell,
		W: g.Cell,
		H: g.Cell,
	}
}
