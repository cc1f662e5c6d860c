package core

import (
	"strings"
	"testing"
)

func TestNewScreenBlank(t *testing.T) {
	s := NewScreen(12, 6)

	if s.Width() != 12 || s.Height() != 6 {
		t.Fatalf("dimensions = %dx%d, expected 12x6", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '▣', ColorCyan)
	cell := s.GetCell(3, 4)
	if cell.Rune != '▣' || cell.Color != ColorCyan {
		t.Errorf("GetCell(3, 4) = %+v, expected colored block", cell)
	}

	// Out of bounds writes are silent, reads return a blank cell
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, '#', ColorRed)

	s.Clear()

	if cell := s.GetCell(2, 2); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, expected blank cell, got %+v", cell)
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if s.Get(2, 1) != 'H' || s.Get(6, 1) != 'o' {
		t.Error("DrawText did not place text at expected cells")
	}

	// Text extending beyond the right edge is clipped
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(0, 0, "hi", ColorBrightYellow)

	for i := 0; i < 2; i++ {
		if s.GetCell(i, 0).Color != ColorBrightYellow {
			t.Errorf("cell %d should carry the text color", i)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("box corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "AAA")
	s.DrawText(0, 1, "BBB")

	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("String() = %q, expected %q", got, "AAA\nBBB")
	}
}
