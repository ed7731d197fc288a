// Package sprite holds the immutable bitmap masks the game draws and collides with,
// the named store that owns them, and the animation clock that picks frames over time.
package sprite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

var (
	// ErrDimensionMismatch means width*height disagrees with the supplied data length.
	ErrDimensionMismatch = errors.New("sprite: data length does not match dimensions")

	// ErrMissingAsset means a required sprite is absent from a store.
	ErrMissingAsset = errors.New("sprite: required asset missing")

	// ErrDuplicateName means two entries share one name.
	ErrDuplicateName = errors.New("sprite: duplicate name")
)

// Sprite is a width x height ink mask stored row-major with row 0 as the visual top.
// Sprites are shared by pointer and never modified after New returns.
type Sprite struct {
	width  int
	height int
	ink    []bool
}

// New builds a sprite from 0/1 data. Any non-zero value counts as ink.
func New(width, height int, data []uint8) (*Sprite, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensionMismatch, width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: %dx%d needs %d values, got %d",
			ErrDimensionMismatch, width, height, width*height, len(data))
	}

	ink := make([]bool, len(data))
	for i, v := range data {
		ink[i] = v != 0
	}
	return &Sprite{width: width, height: height, ink: ink}, nil
}

// FromRows builds a sprite from text rows, one string per row, top row first.
// '@', '#', '1', 'X' and 'x' are ink; every other rune is transparent.
func FromRows(rows ...string) (*Sprite, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrDimensionMismatch)
	}

	width := len([]rune(rows[0]))
	data := make([]uint8, 0, width*len(rows))
	for i, row := range rows {
		if n := len([]rune(row)); n != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, expected %d", ErrDimensionMismatch, i, n, width)
		}
		for _, r := range row {
			data = append(data, inkValue(r))
		}
	}
	return New(width, len(rows), data)
}

// MustFromRows is FromRows for compiled-in assets; it panics on malformed data.
func MustFromRows(rows ...string) *Sprite {
	s, err := FromRows(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

func inkValue(r rune) uint8 {
	switch r {
	case '@', '#', '1', 'X', 'x':
		return 1
	default:
		return 0
	}
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.height
}

// Ink reports whether the pixel at column x, row y (row 0 = top) is drawn.
// Out-of-range coordinates are transparent.
func (s *Sprite) Ink(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.ink[y*s.width+x]
}

// Bounds returns the sprite's bounding box when placed at (x, y).
func (s *Sprite) Bounds(x, y int) core.Rect {
	return core.NewRect(x, y, s.width, s.height)
}

// String renders the mask as text rows ('@' = ink, '.' = transparent), top row first.
func (s *Sprite) String() string {
	var sb strings.Builder
	sb.Grow((s.width + 1) * s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.width; x++ {
			if s.ink[y*s.width+x] {
				sb.WriteByte('@')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Overlap reports whether sprite a placed at (xa, ya) and sprite b placed at (xb, yb)
// have intersecting bounding boxes. It only looks at dimensions, not ink.
func Overlap(a *Sprite, xa, ya int, b *Sprite, xb, yb int) bool {
	return a.Bounds(xa, ya).Intersects(b.Bounds(xb, yb))
}
