package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, want 'X'", got)
	}

	// Out of bounds is silently ignored
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get should return space, got %q", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '#', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, want '#' in green", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.Fill('#')
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := s.Get(x, y); got != ' ' {
				t.Fatalf("Clear left %q at (%d, %d)", got, x, y)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')

	s.Resize(20, 10)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("Resize should preserve content, got %q", got)
	}
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, want 20x10", s.Width(), s.Height())
	}

	// Shrinking clips
	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("content inside shrunk bounds should survive, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText did not place runes, row = %q", s.Row(1))
	}

	// Text extending past the edge is clipped, not wrapped
	s.DrawText(8, 0, "long")
	if s.Get(0, 1) == 'n' {
		t.Error("DrawText should clip, not wrap")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
