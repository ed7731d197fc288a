package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/framebuffer"
)

// HalfBlock draws the upper pixel as foreground and the lower pixel as background.
const HalfBlock = '▀'

// ScreenSize returns the cell grid needed for a width x height frame at the given scale.
func ScreenSize(width, height, scale int) (cols, rows int) {
	scale = max(scale, 1)
	cols = ceilDiv(width, scale)
	rows = ceilDiv(ceilDiv(height, scale), 2)
	return cols, rows
}

// FitScale returns the smallest scale at which a width x height frame fits into
// a cols x rows terminal area.
func FitScale(width, height, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	return max(1, ceilDiv(width, cols), ceilDiv(height, rows*2))
}

// Downsample draws buf into dst with one half-block cell per two scaled pixel rows.
// Each scale x scale block keeps the first non-background pixel found (a max-pool
// that never loses a one-pixel projectile), else the background.
// buf row 0 is the bottom of the display; dst row 0 is the top.
func Downsample(dst *core.Screen, buf *framebuffer.Buffer, scale int, background core.Color) {
	scale = max(scale, 1)
	cols, rows := ScreenSize(buf.Width(), buf.Height(), scale)
	dst.Resize(cols, rows)

	for cy := range rows {
		for cx := range cols {
			dst.SetCell(cx, cy, core.Cell{
				Rune: HalfBlock,
				FG:   pool(buf, cx, cy*2, scale, background),
				BG:   pool(buf, cx, cy*2+1, scale, background),
			})
		}
	}
}

// pool samples the scaled block at (bx, by), with by counted from the top.
func pool(buf *framebuffer.Buffer, bx, by, scale int, background core.Color) core.Color {
	top := buf.Height() - 1 - by*scale
	if top < 0 {
		return background
	}
	for dy := range scale {
		y := top - dy
		if y < 0 {
			break
		}
		for dx := range scale {
			x := bx*scale + dx
			if x >= buf.Width() {
				break
			}
			if c := buf.At(x, y); c != background {
				return c
			}
		}
	}
	return background
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// cellStyle returns the lipgloss style for a cell's colors.
// A zero color leaves the terminal default in place.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg != core.ColorTransparent {
		style = style.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg != core.ColorTransparent {
		style = style.Background(lipgloss.Color(bg.Hex()))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
