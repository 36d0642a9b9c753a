package player

// MouseTracker turns absolute cursor positions into per-frame deltas. The
// first sample after construction or Reset only sets the baseline.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Delta returns the motion since the previous sample, with y flipped so that
// moving the mouse up is positive.
func (m *MouseTracker) Delta(x, y float64) (dx, dy float64) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return 0, 0
	}
	dx = x - m.lastX
	dy = m.lastY - y
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset forgets the baseline, e.g. after the cursor is re-captured.
func (m *MouseTracker) Reset() {
	m.primed = false
}
