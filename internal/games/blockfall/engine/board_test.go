package engine

import "testing"

func testShapeO() Shape {
	return mustShape(
		"XX",
		"XX",
	)
}

func TestFitsBounds(t *testing.T) {
	b := NewBoard()
	o := testShapeO()
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 4, 10, true},
		{"left wall", 0, 10, true},
		{"right wall", 8, 10, true},
		{"past left", -1, 10, false},
		{"past right", 9, 10, false},
		{"floor", 4, 18, true},
		{"below floor", 4, 19, false},
		{"spawn ceiling", 4, -2, true},
		{"above ceiling", 4, -3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Fits(o, tt.x, tt.y); got != tt.want {
				t.Errorf("Fits(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFitsOverlap(t *testing.T) {
	b := NewBoard()
	b.cells[10][4] = ColorRed
	o := testShapeO()

	if b.Fits(o, 4, 9) {
		t.Error("overlapping position accepted")
	}
	if !b.Fits(o, 4, 7) {
		t.Error("clear position rejected")
	}
	// Occupied cells above row 0 never collide with board content.
	if !b.Fits(o, 4, -2) {
		t.Error("spawn position above the board rejected")
	}
}

func TestDropRow(t *testing.T) {
	b := NewBoard()
	o := testShapeO()
	if got := b.DropRow(o, 4, -2); got != 18 {
		t.Fatalf("DropRow on empty board = %d, want 18", got)
	}
	for x := 0; x < BoardCols; x++ {
		b.cells[19][x] = ColorGray
	}
	if got := b.DropRow(o, 4, 0); got != 17 {
		t.Fatalf("DropRow over filled floor = %d, want 17", got)
	}
}

func TestPlaceIsPure(t *testing.T) {
	b := NewBoard()
	out := b.Place(testShapeO(), 4, 18, ColorYellow)
	if b.Cell(4, 18) != ColorNone {
		t.Error("Place mutated the receiver")
	}
	for _, c := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		if out.Cell(c[0], c[1]) != ColorYellow {
			t.Errorf("cell (%d,%d) not placed", c[0], c[1])
		}
	}
}

func TestPlaceSkipsOutOfGrid(t *testing.T) {
	b := NewBoard()
	out := b.Place(testShapeO(), 9, 19, ColorYellow)
	if out.Cell(9, 19) != ColorYellow {
		t.Error("in-grid cell missing")
	}
	// The three out-of-grid cells must be dropped, not panic.
	if out.Cell(0, 0) != ColorNone {
		t.Error("unexpected write")
	}
}

func TestFullLines(t *testing.T) {
	b := NewBoard()
	for x := 0; x < BoardCols; x++ {
		b.cells[5][x] = ColorRed
		b.cells[19][x] = ColorBlue
	}
	b.cells[12][0] = ColorGreen // partial row

	got := b.FullLines()
	if len(got) != 2 || got[0] != 5 || got[1] != 19 {
		t.Fatalf("FullLines = %v, want [5 19]", got)
	}
}

func TestRemoveLinesPreservesOrder(t *testing.T) {
	b := NewBoard()
	// Distinct markers in rows 17, 18, 19; row 18 is the one removed.
	b.cells[17][0] = ColorRed
	for x := 0; x < BoardCols; x++ {
		b.cells[18][x] = ColorGray
	}
	b.cells[19][0] = ColorBlue

	out := b.RemoveLines([]int{18})
	if out.Rows() != BoardRows {
		t.Fatalf("rows = %d, want %d", out.Rows(), BoardRows)
	}
	if out.Cell(0, 19) != ColorBlue {
		t.Error("row below removal moved")
	}
	if out.Cell(0, 18) != ColorRed {
		t.Error("row above removal did not shift down by one")
	}
	for x := 0; x < BoardCols; x++ {
		if out.Cell(x, 0) != ColorNone {
			t.Error("prepended row not empty")
		}
	}
}

func TestRemoveLinesMultiple(t *testing.T) {
	b := NewBoard()
	for _, y := range []int{16, 18} {
		for x := 0; x < BoardCols; x++ {
			b.cells[y][x] = ColorGray
		}
	}
	b.cells[17][3] = ColorGreen
	b.cells[19][7] = ColorRed

	out := b.RemoveLines([]int{16, 18})
	if out.Cell(7, 19) != ColorRed {
		t.Error("bottom row moved")
	}
	if out.Cell(3, 18) != ColorGreen {
		t.Error("middle row landed in the wrong place")
	}
	if len(out.FullLines()) != 0 {
		t.Error("full lines remain after removal")
	}
}

func TestBoardHashChangesWithContent(t *testing.T) {
	a := NewBoard()
	b := NewBoard()
	if a.Hash() != b.Hash() {
		t.Fatal("empty boards hash differently")
	}
	b.cells[0][0] = ColorCyan
	if a.Hash() == b.Hash() {
		t.Fatal("hash ignored cell content")
	}
}
