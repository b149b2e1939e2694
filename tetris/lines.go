package tetris

// ClearFullRows removes every full row from the board, moving the rows above
// each one down, and returns how many rows were removed.
//
// The scan restarts from the bottom after every removal.
func ClearFullRows(b *Board) int {
	found := -1
	for y := range Height {
		if b.grid.full(y) {
			found = y
			break
		}
	}
	if found < 0 {
		return 0
	}

	for y := found + 1; y < Height; y++ {
		for x := range Width {
			b.paint(x, y-1, b.grid[x][y])
		}
	}
	// the top row is either the cleared row itself or a row that has just been
	// copied one row down.
	for x := range Width {
		b.paint(x, Height-1, Empty)
	}

	return 1 + ClearFullRows(b)
}
