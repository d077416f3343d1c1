package editor

// repeatState is the AB repeat range. a and b are meaningful only when set;
// on is true when set and a != b, which makes playback past b jump back to a.
type repeatState struct {
	a, b     float64
	set      bool
	on       bool
	dragging bool
}

// Repeat returns the AB repeat range; set is false if there is none.
func (t *Timeline) Repeat() (a, b float64, set bool) {
	return t.repeat.a, t.repeat.b, t.repeat.set
}

// RepeatOn reports whether the AB repeat is active.
func (t *Timeline) RepeatOn() bool { return t.repeat.on }

// SetRepeat sets the AB repeat range. The points are ordered and kept within
// the media.
func (t *Timeline) SetRepeat(a, b float64) {
	a = min(max(a, 0), t.length)
	b = min(max(b, 0), t.length)
	t.repeat.a, t.repeat.b = min(a, b), max(a, b)
	t.repeat.set = true
	t.repeat.dragging = false
	t.checkRepeatOn()
	t.Render()
}

// ClearRepeat removes the AB repeat range. It can be called any number of
// times; every call announces that the repeat is off.
func (t *Timeline) ClearRepeat() {
	if t.state.gesture.kind == gestureRepeat {
		t.state.gesture = gesture{}
	}
	t.repeat = repeatState{}
	t.Render()
	t.emit(EventRepeatDisabled, 0, nil)
}

// resetABPoints collapses both points to the time at p.
func (t *Timeline) resetABPoints(p Point) {
	tm := t.pointTime(p)
	t.repeat.a, t.repeat.b = tm, tm
	t.repeat.set = true
	t.Render()
}

// updateABPoints moves the point nearer to p, A on the left of the middle of
// the range and B on the right.
func (t *Timeline) updateABPoints(p Point) {
	if !t.repeat.set {
		t.resetABPoints(p)
		return
	}
	tm := t.pointTime(p)
	if p.X < t.view.TimeToPixel((t.repeat.a+t.repeat.b)/2) {
		t.repeat.a = tm
	} else {
		t.repeat.b = tm
	}
	if t.repeat.a > t.repeat.b {
		t.repeat.a, t.repeat.b = t.repeat.b, t.repeat.a
	}
	t.Render()
}

// checkRepeatOn recomputes whether the repeat is on, announcing changes.
func (t *Timeline) checkRepeatOn() {
	on := t.repeat.set && t.repeat.a != t.repeat.b
	if on == t.repeat.on {
		return
	}
	t.repeat.on = on
	t.Render()
	if on {
		t.emit(EventRepeatEnabled, 0, nil)
	} else {
		t.emit(EventRepeatDisabled, 0, nil)
	}
}

func (t *Timeline) pointTime(p Point) float64 {
	return min(max(t.view.PixelToTime(p.X), 0), t.length)
}
