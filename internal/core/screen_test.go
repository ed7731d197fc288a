package core

import (
	"strings"
	"testing"
)

var (
	green = RGB(0x00, 0x80, 0x00)
	red   = RGB(0x80, 0x00, 0x00)
)

// paint fills the whole screen with colored half blocks, the way a rendered frame looks.
func paint(s *Screen) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.SetCell(x, y, Cell{Rune: '▀', FG: red, BG: green})
		}
	}
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenCellColors(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetCell(1, 1, Cell{Rune: '▀', FG: red, BG: green})
	got := s.GetCell(1, 1)
	if got.Rune != '▀' || got.FG != red || got.BG != green {
		t.Errorf("GetCell(1, 1) = %+v, expected ▀ fg %s bg %s", got, red.Hex(), green.Hex())
	}
	if s.Get(1, 1) != '▀' {
		t.Errorf("Get(1, 1) = %q, expected ▀", s.Get(1, 1))
	}

	// Set swaps the rune only.
	s.Set(1, 1, '#')
	got = s.GetCell(1, 1)
	if got != (Cell{Rune: '#', FG: red, BG: green}) {
		t.Errorf("after Set, GetCell(1, 1) = %+v, expected # with colors kept", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	paint(s)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right edge", 4, 0},
		{"top", 0, -1},
		{"bottom edge", 0, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.SetCell(tc.x, tc.y, Cell{Rune: 'Z', FG: red})
			s.Set(tc.x, tc.y, 'Z')
			if c := s.GetCell(tc.x, tc.y); c != (Cell{Rune: ' '}) {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", tc.x, tc.y, c)
			}
		})
	}
	if strings.ContainsRune(s.String(), 'Z') {
		t.Errorf("out of bounds writes leaked into %q", s.String())
	}
}

func TestScreenClearDropsColors(t *testing.T) {
	s := NewScreen(3, 2)
	paint(s)

	s.Clear()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := s.GetCell(x, y); c.FG != 0 || c.BG != 0 || c.Rune != ' ' {
				t.Errorf("GetCell(%d, %d) = %+v after Clear, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenTextOverFrame(t *testing.T) {
	s := NewScreen(10, 3)
	paint(s)

	s.DrawText(7, 1, "PAUSED")
	if got := s.Row(1); got != "▀▀▀▀▀▀▀PAU" {
		t.Errorf("Row(1) = %q, expected clipped text", got)
	}
	// Text cells use terminal default colors so they stay readable on the frame.
	if c := s.GetCell(7, 1); c.FG != 0 || c.BG != 0 {
		t.Errorf("text cell = %+v, expected default colors", c)
	}
	if c := s.GetCell(6, 1); c.FG != red {
		t.Errorf("cell before text = %+v, expected frame colors", c)
	}

	// Centering counts runes, not bytes.
	s.DrawTextCentered(2, "└─┘")
	if got := s.Row(2); got != "▀▀▀└─┘▀▀▀▀" {
		t.Errorf("Row(2) = %q, expected centered box runes", got)
	}
}

func TestScreenBannerShapes(t *testing.T) {
	s := NewScreen(8, 5)
	paint(s)

	box := NewRect(1, 1, 5, 3)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	expected := []string{
		"▀▀▀▀▀▀▀▀",
		"▀┌───┐▀▀",
		"▀│   │▀▀",
		"▀└───┘▀▀",
		"▀▀▀▀▀▀▀▀",
	}
	if got := s.String(); got != strings.Join(expected, "\n") {
		t.Errorf("String() =\n%s\nexpected\n%s", got, strings.Join(expected, "\n"))
	}
	// The box interior is cleared to default colors; cells at Right() are untouched.
	if c := s.GetCell(3, 2); c != (Cell{Rune: ' '}) {
		t.Errorf("interior cell = %+v, expected blank", c)
	}
	if c := s.GetCell(box.Right(), 2); c.FG != red {
		t.Errorf("cell at Right() = %+v, expected frame colors", c)
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(0, 0, Cell{Rune: '▀', FG: red, BG: green})
	s.SetCell(3, 3, Cell{Rune: '▀', FG: red})

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if c := s.GetCell(0, 0); c != (Cell{Rune: '▀', FG: red, BG: green}) {
		t.Errorf("GetCell(0, 0) = %+v after shrink, expected colors kept", c)
	}

	s.Resize(4, 4)
	if c := s.GetCell(3, 3); c != (Cell{Rune: ' '}) {
		t.Errorf("GetCell(3, 3) = %+v after regrow, expected blank", c)
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected blank row", got)
	}
}
