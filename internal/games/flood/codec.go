package flood

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// The persisted form of a board is a flat integer sequence: a fixed header
// followed by one color/x/y triple per tile in row-major order. The region
// is not stored; it is an invariant of the grid and is recomputed on decode.
const (
	codecVersion = 1
	headerLen    = 8 // version, width, height, colors, currentColor, moves, score, finished
	tileLen      = 3 // color, x, y
)

// Codec errors.
var (
	ErrCodecVersion = errors.New("flood: unsupported codec version")
	ErrCodecShort   = errors.New("flood: truncated board data")
	ErrCodecValue   = errors.New("flood: invalid value in board data")
)

// Encode flattens a board into its integer-sequence form.
func Encode(b Board) []int {
	out := make([]int, 0, headerLen+b.Area()*tileLen)

	finished := 0
	if b.Finished {
		finished = 1
	}
	out = append(out,
		codecVersion,
		b.Width,
		b.Height,
		b.Colors,
		int(b.CurrentColor),
		b.Moves,
		b.Score,
		finished,
	)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			out = append(out, int(b.Cells[y][x]), x, y)
		}
	}
	return out
}

// Decode reconstructs a board from its integer-sequence form, validating the
// envelope version, the header fields, and every tile position. The region,
// current color, and finished flag are cross-checked against the grid so a
// decoded board always satisfies the engine invariants.
func Decode(data []int) (Board, error) {
	if len(data) < headerLen {
		return Board{}, ErrCodecShort
	}
	if data[0] != codecVersion {
		return Board{}, fmt.Errorf("%w: %d", ErrCodecVersion, data[0])
	}

	width, height, colors := data[1], data[2], data[3]
	currentColor := Color(data[4])
	moves, score := data[5], data[6]
	finished := data[7]

	if width <= 0 || height <= 0 {
		return Board{}, ErrInvalidSize
	}
	if colors <= 0 {
		return Board{}, ErrInvalidPalette
	}
	if moves < 0 || score < 0 || (finished != 0 && finished != 1) {
		return Board{}, ErrCodecValue
	}
	if len(data) != headerLen+width*height*tileLen {
		return Board{}, ErrCodecShort
	}

	cells := make([][]Color, height)
	for y := range cells {
		cells[y] = make([]Color, width)
	}
	for i := 0; i < width*height; i++ {
		off := headerLen + i*tileLen
		c, x, y := data[off], data[off+1], data[off+2]
		if x != i%width || y != i/width {
			return Board{}, fmt.Errorf("%w: tile %d at (%d,%d)", ErrCodecValue, i, x, y)
		}
		if c < 0 || c >= colors {
			return Board{}, fmt.Errorf("%w: tile %d color %d", ErrCodecValue, i, c)
		}
		cells[y][x] = Color(c)
	}

	b := fromCells(cells, colors)
	if b.CurrentColor != currentColor {
		return Board{}, fmt.Errorf("%w: current color %d does not match grid", ErrCodecValue, currentColor)
	}
	if b.Finished != (finished == 1) {
		return Board{}, fmt.Errorf("%w: finished flag does not match grid", ErrCodecValue)
	}
	b.Moves = moves
	b.Score = score
	return b, nil
}

// Marshal frames the integer sequence as varint bytes for storage.
func Marshal(b Board) []byte {
	seq := Encode(b)
	buf := make([]byte, 0, len(seq)*2)
	var tmp [binary.MaxVarintLen64]byte
	for _, v := range seq {
		n := binary.PutVarint(tmp[:], int64(v))
		buf = append(buf, tmp[:n]...)
	}
	return buf
}

// Unmarshal decodes a board from its varint byte framing.
func Unmarshal(data []byte) (Board, error) {
	var seq []int
	for len(data) > 0 {
		v, n := binary.Varint(data)
		if n <= 0 {
			return Board{}, ErrCodecShort
		}
		seq = append(seq, int(v))
		data = data[n:]
	}
	return Decode(seq)
}
