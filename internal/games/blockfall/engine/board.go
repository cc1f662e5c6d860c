package engine

import (
	"fmt"
	"hash/fnv"
)

// Color identifies the occupying piece's color in a board cell.
// ColorNone marks an empty cell.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorMagenta
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
	ColorWhite
	ColorPink
	ColorLime
	ColorGray
)

// Board dimensions. Rows are ordered top (0) to bottom (BoardRows-1).
const (
	BoardRows = 20
	BoardCols = 10

	// SpawnCeiling is the highest row a piece cell may occupy while still
	// being considered in play; spawn positions sit partially above the
	// visible board.
	SpawnCeiling = -2
)

// Board is the fixed 20x10 play field. The physics methods are pure: they
// never mutate the receiver, and mutators return a fresh board.
type Board struct {
	cells [][]Color
}

// NewBoard returns an empty board.
func NewBoard() Board {
	cells := make([][]Color, BoardRows)
	for y := range cells {
		cells[y] = make([]Color, BoardCols)
	}
	return Board{cells: cells}
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	cells := make([][]Color, len(b.cells))
	for y, row := range b.cells {
		cells[y] = make([]Color, len(row))
		copy(cells[y], row)
	}
	return Board{cells: cells}
}

// Cell returns the color at (x, y), or ColorNone out of bounds.
func (b Board) Cell(x, y int) Color {
	if y < 0 || y >= len(b.cells) || x < 0 || x >= len(b.cells[y]) {
		return ColorNone
	}
	return b.cells[y][x]
}

// Rows returns the number of rows currently held (20 unless corrupted).
func (b Board) Rows() int {
	return len(b.cells)
}

// RowLen returns the length of row y, or -1 if out of range.
func (b Board) RowLen(y int) int {
	if y < 0 || y >= len(b.cells) {
		return -1
	}
	return len(b.cells[y])
}

// Fits reports whether the shape placed at (x, y) is a legal position.
// False if any occupied cell lands outside columns [0, BoardCols), at or
// below row BoardRows, or above SpawnCeiling; false if any occupied cell on
// a visible row overlaps a non-empty board cell. This is the single bounds
// and collision predicate for every movement, rotation and spawn decision.
func (b Board) Fits(s Shape, x, y int) bool {
	for sy, row := range s {
		for sx, filled := range row {
			if !filled {
				continue
			}
			cx := x + sx
			cy := y + sy
			if cx < 0 || cx >= BoardCols {
				return false
			}
			if cy >= BoardRows || cy < SpawnCeiling {
				return false
			}
			if cy >= 0 && b.cells[cy][cx] != ColorNone {
				return false
			}
		}
	}
	return true
}

// DropRow returns the lowest row at which the shape still fits when dropped
// straight down from (x, y). Assumes the starting position fits.
func (b Board) DropRow(s Shape, x, y int) int {
	row := y
	for b.Fits(s, x, row+1) {
		row++
	}
	return row
}

// Place returns a new board with the shape's occupied cells written as the
// given color. Cells outside the grid are skipped rather than rejected:
// reaching them means the caller already failed to fit-test, and dropping a
// stray cell beats crashing mid-game.
func (b Board) Place(s Shape, x, y int, c Color) Board {
	out := b.Clone()
	for sy, row := range s {
		for sx, filled := range row {
			if !filled {
				continue
			}
			cx := x + sx
			cy := y + sy
			if cy < 0 || cy >= len(out.cells) || cx < 0 || cx >= len(out.cells[cy]) {
				continue
			}
			out.cells[cy][cx] = c
		}
	}
	return out
}

// FullLines returns the indices of completely filled rows, top to bottom.
func (b Board) FullLines() []int {
	var full []int
	for y, row := range b.cells {
		filled := true
		for _, c := range row {
			if c == ColorNone {
				filled = false
				break
			}
		}
		if filled {
			full = append(full, y)
		}
	}
	return full
}

// RemoveLines returns a new board with the given rows removed, remaining
// rows shifted down, and fresh empty rows prepended back to 20. Relative
// order of untouched rows is preserved.
func (b Board) RemoveLines(rows []int) Board {
	removed := make(map[int]bool, len(rows))
	for _, y := range rows {
		removed[y] = true
	}

	kept := make([][]Color, 0, BoardRows)
	for y, row := range b.cells {
		if removed[y] {
			continue
		}
		cp := make([]Color, len(row))
		copy(cp, row)
		kept = append(kept, cp)
	}

	out := make([][]Color, 0, BoardRows)
	for len(out)+len(kept) < BoardRows {
		out = append(out, make([]Color, BoardCols))
	}
	out = append(out, kept...)
	return Board{cells: out}
}

// RowColors returns a copy of the colors in row y.
func (b Board) RowColors(y int) []Color {
	if y < 0 || y >= len(b.cells) {
		return nil
	}
	cp := make([]Color, len(b.cells[y]))
	copy(cp, b.cells[y])
	return cp
}

// Hash returns an FNV-1a digest of the board contents, used by replay
// verification and determinism tests.
func (b Board) Hash() uint64 {
	h := fnv.New64a()
	for y, row := range b.cells {
		fmt.Fprintf(h, "%d:", y)
		for _, c := range row {
			h.Write([]byte{byte(c)})
		}
	}
	return h.Sum64()
}
