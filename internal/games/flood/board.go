// Package flood implements the flood-fill color puzzle: a board of colored
// tiles where each move repaints the region connected to the top-left anchor
// tile, growing it until it covers the whole board. The rule engine is pure
// and deterministic; the Game type at the bottom of the package adapts it to
// the platform loop.
package flood

import (
	"errors"
	"math/rand"
	"time"
)

// Color is an opaque palette index. Two colors are equal iff their integer
// values are equal; the engine never interprets them beyond that.
type Color int

// Coord is a 0-indexed grid position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// anchor is the fixed origin tile; every region is rooted here.
var anchor = Coord{X: 0, Y: 0}

// Construction errors.
var (
	ErrInvalidSize     = errors.New("flood: board dimensions must be positive")
	ErrInvalidPalette  = errors.New("flood: palette size must be positive")
	ErrColorOutOfRange = errors.New("flood: color outside palette range")
)

// Board is one immutable snapshot of a puzzle in progress. Mutating
// operations (Apply, NextLevel) return a new Board and leave the receiver
// untouched; callers must treat the Cells and Region of any Board they hold
// as read-only.
type Board struct {
	Width  int
	Height int
	Colors int // palette size used for generation

	CurrentColor Color     // color of the anchor region
	Cells        [][]Color // tile colors, addressed [y][x]
	Region       Region    // connected same-color component containing the anchor

	Moves    int
	Score    int
	Finished bool
}

// NewBoard generates a fresh Width×Height board with each tile colored uniformly
// at random from the palette. The rng is injectable for deterministic tests;
// nil falls back to a time-seeded source. A 1×1 board is finished at
// construction, since its single tile trivially covers it.
func NewBoard(width, height, colors int, rng *rand.Rand) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, ErrInvalidSize
	}
	if colors <= 0 {
		return Board{}, ErrInvalidPalette
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := make([][]Color, height)
	for y := range cells {
		cells[y] = make([]Color, width)
		for x := range cells[y] {
			cells[y][x] = Color(rng.Intn(colors))
		}
	}

	return fromCells(cells, colors), nil
}

// NewFromCells builds a board directly from a prepared grid, bypassing
// randomness. Used by tests and by the decoder. The grid must be rectangular
// and non-empty, and every cell must fall inside the palette.
func NewFromCells(cells [][]Color, colors int) (Board, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Board{}, ErrInvalidSize
	}
	if colors <= 0 {
		return Board{}, ErrInvalidPalette
	}
	width := len(cells[0])

	copied := make([][]Color, len(cells))
	for y, row := range cells {
		if len(row) != width {
			return Board{}, ErrInvalidSize
		}
		copied[y] = make([]Color, width)
		for x, c := range row {
			if c < 0 || int(c) >= colors {
				return Board{}, ErrColorOutOfRange
			}
			copied[y][x] = c
		}
	}

	return fromCells(copied, colors), nil
}

// fromCells assembles a zero-move board around a grid the caller owns.
func fromCells(cells [][]Color, colors int) Board {
	region := Flood(cells)
	width := len(cells[0])
	height := len(cells)

	return Board{
		Width:        width,
		Height:       height,
		Colors:       colors,
		CurrentColor: cells[0][0],
		Cells:        cells,
		Region:       region,
		Finished:     len(region) == width*height,
	}
}

// At returns the color of the tile at (x, y).
func (b Board) At(x, y int) Color {
	return b.Cells[y][x]
}

// InBounds reports whether (x, y) lies on the board.
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Area returns the total tile count.
func (b Board) Area() int {
	return b.Width * b.Height
}

// Equal reports whether two boards are field-for-field identical.
func (b Board) Equal(other Board) bool {
	if b.Width != other.Width || b.Height != other.Height ||
		b.Colors != other.Colors || b.CurrentColor != other.CurrentColor ||
		b.Moves != other.Moves || b.Score != other.Score ||
		b.Finished != other.Finished {
		return false
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}
	if len(b.Region) != len(other.Region) {
		return false
	}
	for p := range b.Region {
		if !other.Region.Has(p) {
			return false
		}
	}
	return true
}

// cloneCells deep-copies the tile grid for a mutation.
func (b Board) cloneCells() [][]Color {
	cells := make([][]Color, b.Height)
	for y, row := range b.Cells {
		cells[y] = make([]Color, b.Width)
		copy(cells[y], row)
	}
	return cells
}
