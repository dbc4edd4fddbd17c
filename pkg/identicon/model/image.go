package model

import (
	colors "gopkg.in/go-playground/colors.v1"
)

// GridCell is one potential coloured square in the 5x5 layout. Index is
// the 0-based position of the cell in the flattened grid.
type GridCell struct {
	Value byte
	Index int
}

// Point is a pixel coordinate on the canvas.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned pixel rectangle. Min is the top-left corner,
// Max the bottom-right corner, both inclusive of the cell edges.
type Rect struct {
	Min Point
	Max Point
}

// Image is the record accumulated by the pipeline. Each stage fills in
// one field and leaves the earlier ones untouched.
type Image struct {
	// Input is the original input string.
	Input string
	// Hash is the 16-byte digest of Input. Immutable after the hash
	// stage.
	Hash []byte
	// Color holds the fill colour picked from the first three digest
	// bytes. Nil before the pick colour stage.
	Color *colors.RGBColor
	// Grid holds the mirrored grid cells. After the build grid stage it
	// has exactly 25 entries with indices 0..24 in order; the filter
	// stage reduces it to the even-valued subsequence.
	Grid []GridCell
	// PixelMap holds one rectangle per surviving grid cell, in the same
	// order as Grid.
	PixelMap []Rect
	// Bytes is the encoded PNG produced by the draw stage.
	Bytes []byte
}
