package sprite

import (
	"errors"
	"testing"
)

func TestNewDimensionMismatch(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		data []uint8
	}{
		{"too short", 2, 2, []uint8{1, 0, 1}},
		{"too long", 1, 2, []uint8{1, 1, 1}},
		{"zero width", 0, 3, nil},
		{"negative height", 3, -1, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.w, tc.h, tc.data)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("New(%d, %d, len=%d) error = %v, expected ErrDimensionMismatch", tc.w, tc.h, len(tc.data), err)
			}
		})
	}
}

func TestNewInk(t *testing.T) {
	s, err := New(3, 2, []uint8{
		1, 0, 0,
		0, 2, 1,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("dimensions = %dx%d, expected 3x2", s.Width(), s.Height())
	}

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{1, 0, false},
		{1, 1, true}, // any non-zero value is ink
		{2, 1, true},
		{3, 0, false}, // out of range
		{0, -1, false},
	}
	for _, tc := range tests {
		if got := s.Ink(tc.x, tc.y); got != tc.expected {
			t.Errorf("Ink(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestFromRows(t *testing.T) {
	s, err := FromRows(
		".@.",
		"@@@",
	)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	if s.String() != ".@.\n@@@" {
		t.Errorf("String() = %q, expected \".@.\\n@@@\"", s.String())
	}

	_, err = FromRows("@@", "@@@")
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("ragged rows error = %v, expected ErrDimensionMismatch", err)
	}

	_, err = FromRows()
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("no rows error = %v, expected ErrDimensionMismatch", err)
	}
}

func TestOverlap(t *testing.T) {
	a, _ := New(11, 8, make([]uint8, 88))
	b, _ := New(1, 3, []uint8{1, 1, 1})

	tests := []struct {
		name     string
		xa, ya   int
		xb, yb   int
		expected bool
	}{
		{"same position", 0, 0, 0, 0, true},
		{"inside", 20, 128, 25, 130, true},
		{"touching right edge", 20, 128, 31, 128, false},
		{"last column", 20, 128, 30, 128, true},
		{"just below", 20, 128, 25, 125, false},
		{"reaching up into bottom row", 20, 128, 25, 126, true},
		{"far away", 0, 0, 100, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlap(a, tc.xa, tc.ya, b, tc.xb, tc.yb)
			if got != tc.expected {
				t.Errorf("Overlap(a@%d,%d b@%d,%d) = %v, expected %v", tc.xa, tc.ya, tc.xb, tc.yb, got, tc.expected)
			}
			// Symmetry
			rev := Overlap(b, tc.xb, tc.yb, a, tc.xa, tc.ya)
			if rev != got {
				t.Errorf("Overlap is not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestOverlapSymmetrySweep(t *testing.T) {
	a := MustFromRows("@@@", "@@@")
	b := MustFromRows("@", "@", "@", "@")

	for dx := -6; dx <= 6; dx++ {
		for dy := -6; dy <= 6; dy++ {
			ab := Overlap(a, 0, 0, b, dx, dy)
			ba := Overlap(b, dx, dy, a, 0, 0)
			if ab != ba {
				t.Fatalf("asymmetric at offset (%d, %d): %v vs %v", dx, dy, ab, ba)
			}
			disjoint := dx >= 3 || dx+1 <= 0 || dy >= 2 || dy+4 <= 0
			if disjoint && ab {
				t.Errorf("disjoint boxes at offset (%d, %d) reported overlap", dx, dy)
			}
		}
	}
}
