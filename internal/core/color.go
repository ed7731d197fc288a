package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed 0xRRGGBBAA pixel value.
// Frame buffers store one Color per pixel; terminal cells use it for fg/bg.
type Color uint32

// Predefined colors.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0x000000FF
	ColorWhite       Color = 0xFFFFFFFF
)

// RGB packs an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF)
}

// RGBA unpacks the color channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb" (alpha is dropped).
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("core: invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color(v), nil
}
