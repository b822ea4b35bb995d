package flood

import (
	"testing"
)

func mustBoard(t *testing.T, cells [][]Color, colors int) Board {
	t.Helper()
	b, err := NewFromCells(cells, colors)
	if err != nil {
		t.Fatalf("NewFromCells() failed: %v", err)
	}
	return b
}

func TestApplyOutOfRange(t *testing.T) {
	b := mustBoard(t, [][]Color{{0, 1}, {1, 1}}, 2)

	for _, c := range []Color{-1, 2, 99} {
		got, err := b.Apply(c)
		if err != ErrColorOutOfRange {
			t.Errorf("Apply(%d) error = %v, want ErrColorOutOfRange", c, err)
		}
		if !got.Equal(b) {
			t.Errorf("Apply(%d) must leave the board unchanged", c)
		}
	}
}

func TestApplySameColorNoOp(t *testing.T) {
	b := mustBoard(t, [][]Color{{0, 1}, {1, 1}}, 2)

	got, err := b.Apply(b.CurrentColor)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if !got.Equal(b) {
		t.Error("choosing the current color must be a strict no-op")
	}
	if got.Moves != 0 {
		t.Errorf("no-op incremented Moves to %d", got.Moves)
	}
}

func TestApplyGrowth(t *testing.T) {
	// 0 0 1      region starts as the two 0s; painting 1 floods the top
	// 2 1 1      right block but leaves the 2s.
	b := mustBoard(t, [][]Color{
		{0, 0, 1},
		{2, 1, 1},
	}, 3)

	got, err := b.Apply(1)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if got.Moves != 1 {
		t.Errorf("Moves = %d, want 1", got.Moves)
	}
	if got.CurrentColor != 1 {
		t.Errorf("CurrentColor = %d, want 1", got.CurrentColor)
	}
	if got.Finished {
		t.Error("board should not be finished")
	}
	if len(got.Region) != 5 {
		t.Errorf("region size = %d, want 5", len(got.Region))
	}
	// The receiver must be untouched.
	if b.Moves != 0 || b.At(0, 0) != 0 || len(b.Region) != 2 {
		t.Error("Apply mutated its receiver")
	}
}

func TestApplyNoGrowth(t *testing.T) {
	// Painting 2 recolors the anchor but connects to nothing: the whole
	// move is discarded, including the repaint itself.
	b := mustBoard(t, [][]Color{
		{0, 1},
		{1, 2},
	}, 3)

	got, err := b.Apply(2)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if !got.Equal(b) {
		t.Error("no-growth move must return the original board")
	}
	if got.At(0, 0) != 0 {
		t.Errorf("anchor repainted to %d on a discarded move", got.At(0, 0))
	}
	if got.Moves != 0 {
		t.Errorf("Moves = %d, want 0 for a discarded move", got.Moves)
	}
	if got.CurrentColor != 0 {
		t.Errorf("CurrentColor = %d, want 0", got.CurrentColor)
	}
}

func TestApplyCompletion(t *testing.T) {
	// One move completes the 2x2 board. The completion bonus is
	// W*H - Moves computed before the increment: 4 - 0 = 4.
	b := mustBoard(t, [][]Color{
		{0, 1},
		{1, 1},
	}, 2)

	got, err := b.Apply(1)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if !got.Finished {
		t.Error("board should be finished")
	}
	if got.Score != 4 {
		t.Errorf("Score = %d, want 4", got.Score)
	}
	if got.Moves != 1 {
		t.Errorf("Moves = %d, want 1", got.Moves)
	}
	if len(got.Region) != got.Area() {
		t.Errorf("finished region size = %d, want %d", len(got.Region), got.Area())
	}
}

func TestApplyCompletionScoreUsesPreMoveCount(t *testing.T) {
	// Two moves to finish a 1x3 strip: the second move's bonus must use
	// the move count before its own increment (3 - 1 = 2).
	b := mustBoard(t, [][]Color{{0, 1, 0}}, 2)

	b, err := b.Apply(1) // 1 1 0, region grows to 2
	if err != nil {
		t.Fatalf("Apply(1) failed: %v", err)
	}
	if b.Moves != 1 || b.Finished {
		t.Fatalf("after first move: Moves=%d Finished=%v", b.Moves, b.Finished)
	}
	scoreAfterFirst := b.Score

	b, err = b.Apply(0) // 0 0 0, completes
	if err != nil {
		t.Fatalf("Apply(0) failed: %v", err)
	}
	if !b.Finished {
		t.Fatal("board should be finished")
	}
	if want := scoreAfterFirst + 2; b.Score != want {
		t.Errorf("Score = %d, want %d", b.Score, want)
	}
}

func TestApplyFinishedIsMonotonic(t *testing.T) {
	b := mustBoard(t, [][]Color{
		{0, 1},
		{1, 1},
	}, 2)
	b, _ = b.Apply(1)
	if !b.Finished {
		t.Fatal("setup: board should be finished")
	}

	for c := 0; c < b.Colors; c++ {
		got, err := b.Apply(Color(c))
		if err != nil {
			t.Fatalf("Apply(%d) failed: %v", c, err)
		}
		if !got.Equal(b) {
			t.Errorf("Apply(%d) mutated a finished board", c)
		}
	}
}

func TestApplyCornerBonus(t *testing.T) {
	// 0 1 1      painting 1 floods the top row and right column, newly
	// 2 2 1      capturing the top-right and bottom-right corners.
	// 2 2 1      scoreDiff = 9 - 0 = 9, so the move scores 2 * 9 = 18.
	b := mustBoard(t, [][]Color{
		{0, 1, 1},
		{2, 2, 1},
		{2, 2, 1},
	}, 3)

	got, err := b.Apply(1)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if got.Finished {
		t.Fatal("board should not be finished")
	}
	if got.Score != 18 {
		t.Errorf("Score = %d, want 18 (two corner bonuses)", got.Score)
	}
	if got.Moves != 1 {
		t.Errorf("Moves = %d, want 1", got.Moves)
	}
}

func TestApplyCornerBonusNotReawarded(t *testing.T) {
	// The bottom-left corner is already in the starting region; growing
	// the region without touching new corners scores nothing.
	//
	// 0 1 2
	// 0 1 2
	// 0 1 2
	b := mustBoard(t, [][]Color{
		{0, 1, 2},
		{0, 1, 2},
		{0, 1, 2},
	}, 3)

	got, err := b.Apply(1)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if got.Score != 0 {
		t.Errorf("Score = %d, want 0 (no newly captured corners)", got.Score)
	}
	if len(got.Region) != 6 {
		t.Errorf("region size = %d, want 6", len(got.Region))
	}
}

func TestApplyRegionGrowsOrCompletes(t *testing.T) {
	b := mustBoard(t, [][]Color{
		{0, 1, 0, 2},
		{1, 1, 2, 2},
		{0, 2, 2, 1},
		{2, 2, 1, 1},
	}, 3)

	for c := 0; c < 12 && !b.Finished; c++ {
		prevSize := len(b.Region)
		prevMoves := b.Moves

		next, err := b.Apply(Color(c % b.Colors))
		if err != nil {
			t.Fatalf("Apply() failed: %v", err)
		}

		if next.Moves == prevMoves {
			// No-op: everything must be untouched.
			if !next.Equal(b) {
				t.Fatal("un-counted move changed the board")
			}
		} else if !next.Finished && len(next.Region) <= prevSize {
			t.Fatalf("counted move did not grow the region: %d -> %d", prevSize, len(next.Region))
		}
		b = next
	}
}

func TestNextLevel(t *testing.T) {
	unfinished := mustBoard(t, [][]Color{{0, 1}, {1, 1}}, 2)

	got := unfinished.NextLevel(testRNG(5))
	if !got.Equal(unfinished) {
		t.Error("NextLevel on an unfinished board must be a no-op")
	}

	finished, _ := unfinished.Apply(1)
	finished.Score = 40 // pretend some history
	next := finished.NextLevel(testRNG(5))

	if next.Width != 3 || next.Height != 3 {
		t.Errorf("next level = %dx%d, want 3x3", next.Width, next.Height)
	}
	if next.Colors != finished.Colors {
		t.Errorf("palette size changed: %d -> %d", finished.Colors, next.Colors)
	}
	if next.Score != 40 {
		t.Errorf("Score = %d, want cumulative 40", next.Score)
	}
	if next.Moves != 0 {
		t.Errorf("Moves = %d, want 0 on a fresh level", next.Moves)
	}
}

func TestRegenerate(t *testing.T) {
	b := mustBoard(t, [][]Color{{0, 1}, {1, 1}}, 2)
	b, _ = b.Apply(1)
	score := b.Score

	next := b.Regenerate(testRNG(11))
	if next.Width != 2 || next.Height != 2 {
		t.Errorf("regenerated board = %dx%d, want 2x2", next.Width, next.Height)
	}
	if next.Score != score {
		t.Errorf("Score = %d, want %d", next.Score, score)
	}
	if next.Moves != 0 {
		t.Errorf("Moves = %d, want 0", next.Moves)
	}
}
