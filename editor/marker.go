package editor

import "math"

// CurrentTime returns the position of the time marker, in seconds.
func (t *Timeline) CurrentTime() float64 { return t.timeMarkerPos }

// SetCurrentTime moves the time marker to tm, clamped to the media. When the
// AB repeat is on and tm is past B, the marker goes to A instead and a jump
// event announces it. The cues of every track follow the marker, and the
// view scrolls to keep the marker visible.
func (t *Timeline) SetCurrentTime(tm float64) {
	tm = min(max(tm, 0), t.length)
	if math.IsNaN(tm) || tm == t.timeMarkerPos {
		return
	}
	if t.repeat.on && tm > t.repeat.b {
		tm = t.repeat.a
		t.emit(EventJump, tm, nil)
	}
	t.timeMarkerPos = tm
	for _, track := range t.tracks {
		track.Cues().SetCurrentTime(tm)
	}
	t.emit(EventTimeUpdate, tm, nil)
	if v := t.view; tm < v.Start() || tm > v.End() {
		v.SetWindow(tm, tm+v.Length())
	}
	t.Render()
}
