package tui

import "github.com/vovakirdan/tui-invaders/internal/core"

// drawBanner draws a boxed message centered over the game picture.
// Cells inside the box lose their colors so the text stays readable.
func drawBanner(s *core.Screen, lines ...string) {
	if len(lines) == 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}

	textW := 0
	for _, l := range lines {
		textW = core.Max(textW, len([]rune(l)))
	}

	w := core.Min(textW+4, s.Width())
	h := core.Min(len(lines)+2, s.Height())
	box := core.NewRect(
		core.Clamp((s.Width()-w)/2, 0, s.Width()-w),
		core.Clamp((s.Height()-h)/2, 0, s.Height()-h),
		w, h,
	)

	s.DrawRect(box, ' ')
	s.DrawBox(box)

	_, cy := box.Center()
	top := cy - len(lines)/2
	for i, l := range lines {
		y := top + i
		if y <= box.Y || y >= box.Bottom()-1 {
			continue
		}
		s.DrawTextCentered(y, l)
	}
}

// banner returns the overlay lines for the current state, or nil while playing.
func banner(state core.GameState) []string {
	switch {
	case state.GameOver:
		return []string{"WAVE CLEARED", "r: restart  q: quit"}
	case state.Paused:
		return []string{"PAUSED", "p: resume"}
	}
	return nil
}
