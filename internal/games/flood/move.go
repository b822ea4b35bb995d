package flood

import "math/rand"

// Apply plays one color choice and returns the resulting board. The receiver
// is never modified; on every no-op branch the returned board is the
// receiver itself, field for field.
//
// Precedence:
//  1. out-of-range color: ErrColorOutOfRange, board unchanged
//  2. finished board: no-op
//  3. choosing the current color: no-op
//  4. repaint the region, recompute it over the new grid
//  5. region covers the board: completion bonus, move counted, Finished set
//  6. region did not grow: full no-op, the repaint is discarded
//  7. region grew: move counted, corner-capture bonuses awarded
//
// The score delta is Width·Height minus the move count before this move, for
// both the completion bonus and each corner bonus. Moves counts only choices
// that changed the board.
func (b Board) Apply(c Color) (Board, error) {
	if c < 0 || int(c) >= b.Colors {
		return b, ErrColorOutOfRange
	}
	if b.Finished || c == b.CurrentColor {
		return b, nil
	}

	cells := b.cloneCells()
	for p := range b.Region {
		cells[p.Y][p.X] = c
	}
	grown := Flood(cells)

	scoreDiff := b.Area() - b.Moves

	if len(grown) == b.Area() {
		b.Cells = cells
		b.Region = grown
		b.CurrentColor = c
		b.Score += scoreDiff
		b.Moves++
		b.Finished = true
		return b, nil
	}

	if len(grown) == len(b.Region) {
		// Growth is the only accepted outcome of a non-completing move.
		return b, nil
	}

	prev := b.Region
	b.Cells = cells
	b.Region = grown
	b.CurrentColor = c
	b.Moves++

	// A corner bonus is awarded once, when the corner first joins the
	// region. The anchor corner never counts; it is in the region from
	// the start.
	for _, corner := range b.bonusCorners() {
		if grown.Has(corner) && !prev.Has(corner) {
			b.Score += scoreDiff
		}
	}

	return b, nil
}

// bonusCorners returns the three non-anchor board corners.
func (b Board) bonusCorners() [3]Coord {
	return [3]Coord{
		{X: b.Width - 1, Y: 0},
		{X: b.Width - 1, Y: b.Height - 1},
		{X: 0, Y: b.Height - 1},
	}
}

// NextLevel advances a finished board to a fresh one grown by one tile in
// each axis, with the same palette and the cumulative score carried over.
// Unfinished boards are returned unchanged. There is no level cap.
func (b Board) NextLevel(rng *rand.Rand) Board {
	if !b.Finished {
		return b
	}

	// Dimensions and palette grow from an already valid board, so
	// NewBoard cannot fail here.
	next, _ := NewBoard(b.Width+1, b.Height+1, b.Colors, rng)
	next.Score = b.Score
	return next
}

// Regenerate replaces a finished board with a fresh one of the same size,
// keeping the cumulative score. Used by zen mode, where difficulty does not
// escalate. Unfinished boards are returned unchanged.
func (b Board) Regenerate(rng *rand.Rand) Board {
	if !b.Finished {
		return b
	}

	next, _ := NewBoard(b.Width, b.Height, b.Colors, rng)
	next.Score = b.Score
	return next
}
