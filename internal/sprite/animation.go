package sprite

import (
	"errors"
	"math"
)

// Animation selects a frame from an ordered sprite sequence based on elapsed time.
//
// The frame index is computed once per Advance and cached, so every reader within one
// simulation step (render pass, collision pass) sees the same frame.
type Animation struct {
	frames        []*Sprite
	frameDuration float64 // seconds per frame
	loop          bool

	elapsed float64
	index   int
	active  bool
}

// NewAnimation creates an active animation starting at frame 0.
func NewAnimation(frames []*Sprite, frameDuration float64, loop bool) (*Animation, error) {
	if len(frames) == 0 {
		return nil, errors.New("sprite: animation needs at least one frame")
	}
	if frameDuration <= 0 {
		return nil, errors.New("sprite: animation frame duration must be positive")
	}
	for _, f := range frames {
		if f == nil {
			return nil, errors.New("sprite: animation frame is nil")
		}
	}

	return &Animation{
		frames:        frames,
		frameDuration: frameDuration,
		loop:          loop,
		active:        true,
	}, nil
}

// Advance adds dt seconds and applies the loop/finish policy once.
// Negative dt is ignored. A finished animation stays finished until Reset.
func (a *Animation) Advance(dt float64) {
	if !a.active || dt <= 0 {
		return
	}

	a.elapsed += dt
	idx := int(math.Floor(a.elapsed / a.frameDuration))
	if idx < len(a.frames) {
		a.index = idx
		return
	}

	if a.loop {
		a.elapsed = math.Mod(a.elapsed, a.frameDuration*float64(len(a.frames)))
		a.index = int(math.Floor(a.elapsed / a.frameDuration))
		// Float rounding can land exactly on the cycle length.
		if a.index >= len(a.frames) {
			a.elapsed = 0
			a.index = 0
		}
		return
	}

	a.elapsed = 0
	a.index = 0
	a.active = false
}

// FrameIndex returns the frame selected by the last Advance.
func (a *Animation) FrameIndex() int {
	return a.index
}

// Frame returns the sprite at index i, clamped to the sequence.
func (a *Animation) Frame(i int) *Sprite {
	if i < 0 {
		i = 0
	}
	if i >= len(a.frames) {
		i = len(a.frames) - 1
	}
	return a.frames[i]
}

// Current returns the currently selected sprite.
func (a *Animation) Current() *Sprite {
	return a.frames[a.index]
}

// Elapsed returns the accumulated time within the current cycle.
func (a *Animation) Elapsed() float64 {
	return a.elapsed
}

// Active reports whether the animation is still playing.
// Looping animations never finish.
func (a *Animation) Active() bool {
	return a.active
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.frames)
}

// Reset rewinds to frame 0 and reactivates the animation.
func (a *Animation) Reset() {
	a.elapsed = 0
	a.index = 0
	a.active = true
}
