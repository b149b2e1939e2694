package tetris

import "math/rand/v2"

// Variant is one of the seven tetromino shapes.
type Variant uint8

const (
	L Variant = iota
	BackL
	Line
	Square
	Z
	BackZ
	T
)

const variantCount = 7

// Mask is the occupancy of a piece inside its 4x4 bounding box.
// mask[row][col], row 0 is the top of the piece.
type Mask [4][4]bool

var variantNames = [variantCount]string{"L", "BackL", "Line", "Square", "Z", "BackZ", "T"}

var variantColors = [variantCount]Color{
	L:      Orange,
	BackL:  Blue,
	Line:   LightBlue,
	Square: Yellow,
	Z:      Red,
	BackZ:  Lime,
	T:      Purple,
}

func (v Variant) String() string { return variantNames[v] }
func (v Variant) Color() Color { return variantColors[v] }

// Variants lists every shape in catalog order.
func Variants() []Variant {
	return []Variant{L, BackL, Line, Square, Z, BackZ, T}
}

// Occupancy returns the mask for a variant at a rotation. The rotation is
// not validated, callers keep it in [0,4).
func Occupancy(v Variant, rotation int) Mask {
	return shapes[v][rotation]
}

// RandomVariant picks one of the seven shapes with equal probability.
// Repeats are possible. A nil r uses the global generator.
func RandomVariant(r *rand.Rand) Variant {
	if r == nil {
		return Variant(rand.IntN(variantCount))
	}
	return Variant(r.IntN(variantCount))
}

// Rotation states advance clockwise.
var shapes = [variantCount][4]Mask{
	/*
		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3
		0	X X O X		0	X O X X		0	X X X X		0	O O X X
		1	O O O X		1	X O X X		1	O O O X		1	X O X X
		2	X X X X		2	X O O X		2	O X X X		2	X O X X
	*/
	L: {
		{
			{false, false, true, false},
			{true, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
		{
			{false, true, false, false},
			{false, true, false, false},
			{false, true, true, false},
			{false, false, false, false},
		},
		{
			{false, false, false, false},
			{true, true, true, false},
			{true, false, false, false},
			{false, false, false, false},
		},
		{
			{true, true, false, false},
			{false, true, false, false},
			{false, true, false, false},
			{false, false, false, false},
		},
	},
	/*
		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3
		0	O X X X		0	X O O X		0	X X X X		0	X O X X
		1	O O O X		1	X O X X		1	O O O X		1	X O X X
		2	X X X X		2	X O X X		2	X X O X		2	O O X X
	*/
	BackL: {
		{
			{true, false, false, false},
			{true, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
		{
			{false, true, true, false},
			{false, true, false, false},
			{false, true, false, false},
			{false, false, false, false},
		},
		{
			{false, false, false, false},
			{true, true, true, false},
			{false, false, true, false},
			{false, false, false, false},
		},
		{
			{false, true, false, false},
			{false, true, false, false},
			{true, true, false, false},
			{false, false, false, false},
		},
	},
	/*
		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3
		0	X X X X		0	X X O X		0	X X X X		0	X O X X
		1	O O O O		1	X X O X		1	X X X X		1	X O X X
		2	X X X X		2	X X O X		2	O O O O		2	X O X X
		3	X X X X		3	X X O X		3	X X X X		3	X O X X
	*/
	Line: {
		{
			{false, false, false, false},
			{true, true, true, true},
			{false, false, false, false},
			{false, false, false, false},
		},
		{
			{false, false, true, false},
			{false, false, true, false},
			{false, false, true, false},
			{false, false, true, false},
		},
		{
			{false, false, false, false},
			{false, false, false, false},
			{true, true, true, true},
			{false, false, false, false},
		},
		{
			{false, true, false, false},
			{false, true, false, false},
			{false, true, false, false},
			{false, true, false, false},
		},
	},
	/*
		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3
		0	X O O X		0	X O O X		0	X O O X		0	X O O X
		1	X O O X		1	X O O X		1	X O O X		1	X O O X
		2	X X X X		2	X X X X		2	X X X X		2	X X X X
	*/
	Square: {
		{
			{false, true, true, false},
			{false, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
		{
			{false, true, true, false},
			{false, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
		{
			{false, true, true, false},
			{false, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
		{
			{false, true, true, false},
			{false, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	/*
		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3
		0	O O X X		0	X X O X		0	X X X X		0	X O X X
		1	X O O X		1	X O O X		1	O O X X		1	O O X X
		2	X X X X		2	X O X X		2	X O O X		2	O X X X
	*/
	Z: {
		{
			{true, true, false, false},
			{false, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
		{
			{false, false, true, false},
			{false, true, true, false},
			{false, true, false, false},
			{false, false, false, false},
		},
		{
			{false, false, false, false},
			{true, true, false, false},
			{false, true, true, false},
			{false, false, false, false},
		},
		{
			{false, true, false, false},
			{true, true, false, false},
			{true, false, false, false},
			{false, false, false, false},
		},
	},
	/*
		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3
		0	X O O X		0	X O X X		0	X X X X		0	O X X X
		1	O O X X		1	X O O X		1	X O O X		1	O O X X
		2	X X X X		2	X X O X		2	O O X X		2	X O X X
	*/
	BackZ: {
		{
			{false, true, true, false},
			{true, true, false, false},
			{false, false, false, false},
			{false, false, false, false},
		},
		{
			{false, true, false, false},
			{false, true, true, false},
			{false, false, true, false},
			{false, false, false, false},
		},
		{
			{false, false, false, false},
			{false, true, true, false},
			{true, true, false, false},
			{false, false, false, false},
		},
		{
			{true, false, false, false},
			{true, true, false, false},
			{false, true, false, false},
			{false, false, false, false},
		},
	},
	/*
		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3		.	0 1 2 3
		0	X O X X		0	X O X X		0	X X X X		0	X O X X
		1	O O O X		1	X O O X		1	O O O X		1	O O X X
		2	X X X X		2	X O X X		2	X O X X		2	X O X X
	*/
	T: {
		{
			{false, true, false, false},
			{true, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
		{
			{false, true, false, false},
			{false, true, true, false},
			{false, true, false, false},
			{false, false, false, false},
		},
		{
			{false, false, false, false},
			{true, true, true, false},
			{false, true, false, false},
			{false, false, false, false},
		},
		{
			{false, true, false, false},
			{true, true, false, false},
			{false, true, false, false},
			{false, false, false, false},
		},
	},
}
