// Package framebuffer implements the off-screen pixel grid sprites are composited into.
//
// Row 0 of a Buffer is the bottom of the displayed image. Presenters that draw
// top-down (terminals, image.RGBA) flip rows on the way out.
package framebuffer

import (
	"fmt"
	"image"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sprite"
)

// Buffer is a width x height grid of packed colors, stored row-major.
type Buffer struct {
	width  int
	height int
	pix    []core.Color
}

// New allocates a buffer. Non-positive dimensions yield an empty buffer.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]core.Color, width*height),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Pixels exposes the raw row-major pixel slice (row 0 = bottom).
// Callers must treat it as read-only.
func (b *Buffer) Pixels() []core.Color {
	return b.pix
}

// At returns the pixel at (x, y), or 0 when out of bounds.
func (b *Buffer) At(x, y int) core.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// Set writes one pixel; out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, c core.Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c core.Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Blit writes c at every ink pixel of s, anchored so that the sprite's bottom row
// lands on buffer row y and its top row on y + height - 1. Pixels falling outside the
// buffer are clipped.
func (b *Buffer) Blit(s *sprite.Sprite, x, y int, c core.Color) {
	h := s.Height()
	for yi := 0; yi < h; yi++ {
		row := y + h - 1 - yi
		if row < 0 || row >= b.height {
			continue
		}
		base := row * b.width
		for xi := 0; xi < s.Width(); xi++ {
			col := x + xi
			if col < 0 || col >= b.width {
				continue
			}
			if s.Ink(xi, yi) {
				b.pix[base+col] = c
			}
		}
	}
}

// WriteRGBA writes the buffer as top-down 8-bit RGBA bytes into dst, which must hold
// at least width*height*4 bytes. This is the layout image.RGBA and GPU uploads expect.
func (b *Buffer) WriteRGBA(dst []byte) error {
	need := b.width * b.height * 4
	if len(dst) < need {
		return fmt.Errorf("framebuffer: destination holds %d bytes, need %d", len(dst), need)
	}

	j := 0
	for row := b.height - 1; row >= 0; row-- {
		for _, c := range b.pix[row*b.width : (row+1)*b.width] {
			r, g, bl, a := c.RGBA()
			dst[j+0] = r
			dst[j+1] = g
			dst[j+2] = bl
			dst[j+3] = a
			j += 4
		}
	}
	return nil
}

// Image returns a new top-down image.RGBA copy of the buffer.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	//nolint:errcheck // Pix is sized for the buffer by construction
	b.WriteRGBA(img.Pix)
	return img
}

// ASCII renders the buffer top-down as text: '.' for pixels equal to background,
// '#' for anything else. Used for screenshots and tests.
func (b *Buffer) ASCII(background core.Color) string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for row := b.height - 1; row >= 0; row-- {
		for x := 0; x < b.width; x++ {
			if b.pix[row*b.width+x] == background {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
