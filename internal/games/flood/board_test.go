package flood

import (
	"math/rand"
	"testing"
)

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestNewBoardValidation(t *testing.T) {
	tests := []struct {
		name    string
		w, h, c int
		wantErr error
	}{
		{"zero width", 0, 5, 3, ErrInvalidSize},
		{"negative width", -1, 5, 3, ErrInvalidSize},
		{"zero height", 5, 0, 3, ErrInvalidSize},
		{"zero colors", 5, 5, 0, ErrInvalidPalette},
		{"negative colors", 5, 5, -2, ErrInvalidPalette},
		{"valid", 5, 5, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.w, tt.h, tt.c, testRNG(1))
			if err != tt.wantErr {
				t.Errorf("NewBoard(%d, %d, %d) error = %v, want %v", tt.w, tt.h, tt.c, err, tt.wantErr)
			}
		})
	}
}

func TestNewBoardInitialState(t *testing.T) {
	b, err := NewBoard(6, 4, 3, testRNG(42))
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	if b.Width != 6 || b.Height != 4 || b.Colors != 3 {
		t.Errorf("dimensions = %dx%d/%d, want 6x4/3", b.Width, b.Height, b.Colors)
	}
	if b.Moves != 0 || b.Score != 0 {
		t.Errorf("fresh board has Moves=%d Score=%d, want zeros", b.Moves, b.Score)
	}
	if b.CurrentColor != b.At(0, 0) {
		t.Errorf("CurrentColor = %d, want anchor color %d", b.CurrentColor, b.At(0, 0))
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if c := b.At(x, y); c < 0 || int(c) >= b.Colors {
				t.Fatalf("tile (%d,%d) color %d outside palette", x, y, c)
			}
		}
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	b1, _ := NewBoard(8, 8, 4, testRNG(7))
	b2, _ := NewBoard(8, 8, 4, testRNG(7))

	if !b1.Equal(b2) {
		t.Error("same seed should generate identical boards")
	}
}

func TestNewBoardSingleTileIsFinished(t *testing.T) {
	b, err := NewBoard(1, 1, 3, testRNG(1))
	if err != nil {
		t.Fatalf("NewBoard(1, 1, 3) failed: %v", err)
	}

	if !b.Finished {
		t.Error("1x1 board must be finished at construction")
	}
	if len(b.Region) != 1 || !b.Region.Has(Coord{0, 0}) {
		t.Errorf("1x1 region = %v, want the anchor singleton", b.Region)
	}
}

func TestNewFromCells(t *testing.T) {
	b, err := NewFromCells([][]Color{
		{0, 0, 1},
		{2, 0, 1},
	}, 3)
	if err != nil {
		t.Fatalf("NewFromCells() failed: %v", err)
	}

	if b.Width != 3 || b.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", b.Width, b.Height)
	}
	if b.CurrentColor != 0 {
		t.Errorf("CurrentColor = %d, want 0", b.CurrentColor)
	}
	want := []Coord{{0, 0}, {1, 0}, {1, 1}}
	if len(b.Region) != len(want) {
		t.Fatalf("region size = %d, want %d", len(b.Region), len(want))
	}
	for _, p := range want {
		if !b.Region.Has(p) {
			t.Errorf("region missing %v", p)
		}
	}
}

func TestNewFromCellsValidation(t *testing.T) {
	if _, err := NewFromCells(nil, 3); err != ErrInvalidSize {
		t.Errorf("nil cells: err = %v, want ErrInvalidSize", err)
	}
	if _, err := NewFromCells([][]Color{{0, 1}, {0}}, 3); err != ErrInvalidSize {
		t.Errorf("ragged grid: err = %v, want ErrInvalidSize", err)
	}
	if _, err := NewFromCells([][]Color{{0, 3}}, 3); err != ErrColorOutOfRange {
		t.Errorf("color past palette: err = %v, want ErrColorOutOfRange", err)
	}
	if _, err := NewFromCells([][]Color{{0, 1}}, 0); err != ErrInvalidPalette {
		t.Errorf("zero palette: err = %v, want ErrInvalidPalette", err)
	}
}

func TestNewFromCellsCopiesInput(t *testing.T) {
	cells := [][]Color{{0, 1}, {1, 1}}
	b, _ := NewFromCells(cells, 2)

	cells[0][0] = 1
	if b.At(0, 0) != 0 {
		t.Error("board must not alias the caller's grid")
	}
}

// The region invariant: Board.Region always matches an independent flood
// fill of the grid, for fresh boards and through a sequence of moves.
func TestRegionInvariant(t *testing.T) {
	b, _ := NewBoard(9, 7, 4, testRNG(99))

	check := func(step string) {
		want := Flood(b.Cells)
		if len(want) != len(b.Region) {
			t.Fatalf("%s: region size %d, recomputed %d", step, len(b.Region), len(want))
		}
		for p := range want {
			if !b.Region.Has(p) {
				t.Fatalf("%s: region missing %v", step, p)
			}
		}
	}

	check("fresh")
	for c := 0; c < b.Colors*3 && !b.Finished; c++ {
		next, err := b.Apply(Color(c % b.Colors))
		if err != nil {
			t.Fatalf("Apply(%d) failed: %v", c%b.Colors, err)
		}
		b = next
		check("after move")
	}
}
