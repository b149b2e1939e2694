package tetris

// Fits reports whether a variant at the given rotation and anchor lies fully
// inside the grid and only covers empty cells.
//
//		0 1 2 3 4 5 6 7 8 9			0 1 2 3
//	23	X X X X X O X X X X		0	X X O X
//	22	X X X O O O X X X X		1	O O O X
//	21	X X X X X X X X X X		2	X X X X
//
// The anchor is the top left corner of the 4x4 mask. Rows grow down in the
// mask and up in the grid, so mask row r lands on y - r.
func Fits(g Grid, v Variant, rotation, x, y int) bool {
	mask := Occupancy(v, rotation)
	for row := range mask {
		for col, occupied := range mask[row] {
			if !occupied {
				continue
			}
			tx, ty := x+col, y-row
			if !inBounds(tx, ty) || g[tx][ty] != Empty {
				return false
			}
		}
	}
	return true
}
