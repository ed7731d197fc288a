package framebuffer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sprite"
)

var (
	bg  = core.RGB(0, 128, 0)
	ink = core.RGB(128, 0, 0)
)

// countInk returns how many pixels differ from the background.
func countInk(b *Buffer) int {
	n := 0
	for _, c := range b.Pixels() {
		if c != bg {
			n++
		}
	}
	return n
}

func TestClear(t *testing.T) {
	b := New(4, 3)
	b.Clear(bg)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if b.At(x, y) != bg {
				t.Fatalf("At(%d, %d) = %s, expected %s", x, y, b.At(x, y).Hex(), bg.Hex())
			}
		}
	}
}

func TestBlitVerticalFlipAnchor(t *testing.T) {
	// Top row has a single pixel at the left, bottom row a single pixel at the right.
	s := sprite.MustFromRows(
		"@..",
		"...",
		"..@",
	)
	b := New(10, 10)
	b.Clear(bg)

	b.Blit(s, 2, 4, ink)

	// Bottom row of the sprite (row 2 in source) lands on buffer row y=4.
	if b.At(4, 4) != ink {
		t.Error("sprite bottom row should occupy buffer row y")
	}
	// Top row of the sprite (row 0 in source) lands on y + height - 1 = 6.
	if b.At(2, 6) != ink {
		t.Error("sprite top row should occupy buffer row y + height - 1")
	}
	if countInk(b) != 2 {
		t.Errorf("expected exactly 2 ink pixels, got %d", countInk(b))
	}
}

func TestBlitClipping(t *testing.T) {
	solid := sprite.MustFromRows(
		"@@@@",
		"@@@@",
		"@@@@",
	)

	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"fully inside", 1, 1, 12},
		{"past right edge", 4, 0, 6},    // columns 4,5 of 6
		{"past left edge", -3, 0, 3},    // only column 0
		{"past top edge", 0, 4, 8},      // rows 4,5 of 6
		{"below bottom edge", 0, -2, 4}, // only row 0
		{"fully outside", 10, 10, 0},
		{"fully outside negative", -10, -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New(6, 6)
			b.Clear(bg)
			b.Blit(solid, tc.x, tc.y, ink) // must not panic
			if got := countInk(b); got != tc.expected {
				t.Errorf("Blit at (%d, %d) drew %d pixels, expected %d", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBlitTransparentPixelsKeepBackground(t *testing.T) {
	s := sprite.MustFromRows("@.@")
	b := New(3, 1)
	b.Clear(bg)
	b.Set(1, 0, core.ColorWhite)

	b.Blit(s, 0, 0, ink)

	if b.At(1, 0) != core.ColorWhite {
		t.Error("transparent sprite pixel should not overwrite the buffer")
	}
}

func TestWriteRGBAIsTopDown(t *testing.T) {
	b := New(1, 2)
	b.Set(0, 0, core.RGB(1, 2, 3)) // bottom
	b.Set(0, 1, core.RGB(4, 5, 6)) // top

	dst := make([]byte, 8)
	if err := b.WriteRGBA(dst); err != nil {
		t.Fatalf("WriteRGBA() failed: %v", err)
	}

	expected := []byte{4, 5, 6, 255, 1, 2, 3, 255}
	for i := range expected {
		if dst[i] != expected[i] {
			t.Fatalf("WriteRGBA() = %v, expected %v", dst, expected)
		}
	}

	if err := b.WriteRGBA(make([]byte, 4)); err == nil {
		t.Error("WriteRGBA() should reject a short destination")
	}

	img := b.Image()
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 2 {
		t.Errorf("Image() bounds = %v, expected 1x2", img.Bounds())
	}
	if img.Pix[0] != 4 {
		t.Errorf("Image() first pixel red = %d, expected 4 (top row)", img.Pix[0])
	}
}

func TestASCII(t *testing.T) {
	b := New(3, 2)
	b.Clear(bg)
	b.Set(0, 1, ink) // top-left
	b.Set(2, 0, ink) // bottom-right

	got := b.ASCII(bg)
	expected := "#..\n..#"
	if got != expected {
		t.Errorf("ASCII() = %q, expected %q", got, expected)
	}
	if strings.Count(got, "\n") != 1 {
		t.Error("ASCII() should separate rows with newlines")
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	b := New(2, 2)
	b.Set(-1, 0, ink)
	b.Set(0, 5, ink)
	if b.At(-1, 0) != 0 || b.At(9, 9) != 0 {
		t.Error("out-of-bounds At should return 0")
	}

	empty := New(-3, 4)
	if empty.Width() != 0 || len(empty.Pixels()) != 0 {
		t.Error("negative width should produce an empty buffer")
	}
}
