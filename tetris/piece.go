package tetris

import "errors"

// ErrPieceActive is the panic value of Spawn when a piece is still falling.
var ErrPieceActive = errors.New("spawn with an active piece")

// Direction of a rotation.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Spawn location, the mask is anchored by its top left corner.
//
// .	0 1 2 3 4 5 6 7 8 9
// 23	X X X A X X X X X X
const (
	spawnX = Width/2 - 2
	spawnY = Height - 1
)

// Piece is the falling tetromino. While it is active its cells are painted
// on the board, so every operation erases it first, tests the new position
// against the remaining stack and paints it back.
type Piece struct {
	X, Y     int
	Rotation int
	Color    Color

	variant Variant
	active  bool
}

// Active reports whether a piece is currently falling.
func (p *Piece) Active() bool { return p.active }

// Variant returns the shape of the piece and whether there is one.
func (p *Piece) Variant() (Variant, bool) { return p.variant, p.active }

// Cells returns the board coordinates covered by the piece.
func (p *Piece) Cells() [][2]int {
	if !p.active {
		return nil
	}
	var cells [][2]int
	mask := Occupancy(p.variant, p.Rotation)
	for row := range mask {
		for col, c := range mask[row] {
			if c {
				cells = append(cells, [2]int{p.X + col, p.Y - row})
			}
		}
	}
	return cells
}

// Spawn places a new piece of variant v at the spawn location. It returns
// false, painting nothing, when the spawn location is blocked.
func (p *Piece) Spawn(b *Board, v Variant) bool {
	if p.active {
		panic(ErrPieceActive)
	}
	if !Fits(b.grid, v, 0, spawnX, spawnY) {
		return false
	}
	*p = Piece{
		X:       spawnX,
		Y:       spawnY,
		Color:   v.Color(),
		variant: v,
		active:  true,
	}
	p.draw(b, p.Color)
	return true
}

// MoveBy shifts the piece by (dx, dy) if the new position fits.
func (p *Piece) MoveBy(b *Board, dx, dy int) bool {
	if !p.active {
		return false
	}
	p.draw(b, Empty)
	p.X += dx
	p.Y += dy
	ok := p.fits(b)
	if !ok {
		p.X -= dx
		p.Y -= dy
	}
	p.draw(b, p.Color)
	return ok
}

// HardDrop moves the piece down until it rests on the stack or the floor.
// It returns the number of rows travelled.
func (p *Piece) HardDrop(b *Board) int {
	var rows int
	for p.MoveBy(b, 0, -1) {
		rows++
	}
	return rows
}

// Rotate turns the piece a quarter in direction d. When the rotated piece
// doesn't fit it tries one column towards d and then one column against it
// before giving up and restoring the previous state.
func (p *Piece) Rotate(b *Board, d Direction) bool {
	if !p.active {
		return false
	}
	kick := int(d)
	p.draw(b, Empty)
	before := p.Rotation
	p.Rotation = (p.Rotation + int(d) + 4) % 4

	if !p.fits(b) {
		p.X += kick
		if !p.fits(b) {
			p.X -= 2 * kick
			if !p.fits(b) {
				p.X += kick
				p.Rotation = before
			}
		}
	}
	p.draw(b, p.Color)
	return p.Rotation != before
}

// GravityTick moves the piece one row down. When it can't move it locks:
// its cells stay on the board and the piece becomes inactive.
func (p *Piece) GravityTick(b *Board) (locked bool) {
	if !p.active {
		return false
	}
	if p.MoveBy(b, 0, -1) {
		return false
	}
	p.active = false
	return true
}

func (p *Piece) fits(b *Board) bool {
	return Fits(b.grid, p.variant, p.Rotation, p.X, p.Y)
}

func (p *Piece) draw(b *Board, c Color) {
	for _, cell := range p.Cells() {
		b.paint(cell[0], cell[1], c)
	}
}
