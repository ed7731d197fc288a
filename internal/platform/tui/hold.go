package tui

// DefaultHold is how long a direction stays held after its last key press.
// It has to outlast the terminal's initial auto-repeat delay.
const DefaultHold = 0.5

// HoldTracker turns key presses into held directions. Terminals only report
// presses (plus auto-repeats), never releases, so a direction counts as held
// until hold seconds pass without another press.
type HoldTracker struct {
	hold  float64
	left  float64 // Remaining seconds
	right float64
}

// NewHoldTracker creates a tracker. Non-positive hold uses DefaultHold.
func NewHoldTracker(hold float64) *HoldTracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &HoldTracker{hold: hold}
}

// Press records a press of the left (dir < 0) or right (dir > 0) key.
// Pressing one direction releases the other.
func (h *HoldTracker) Press(dir int) {
	switch {
	case dir < 0:
		h.left = h.hold
		h.right = 0
	case dir > 0:
		h.right = h.hold
		h.left = 0
	}
}

// Move returns the sum of held directions: -1, 0 or +1.
func (h *HoldTracker) Move() int {
	m := 0
	if h.left > 0 {
		m--
	}
	if h.right > 0 {
		m++
	}
	return m
}

// Advance ages both directions by dt seconds.
func (h *HoldTracker) Advance(dt float64) {
	h.left = max(0, h.left-dt)
	h.right = max(0, h.right-dt)
}

// Release drops both directions.
func (h *HoldTracker) Release() {
	h.left, h.right = 0, 0
}
